// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-field-sync/internal/adapter"
	"github.com/MKhiriev/go-field-sync/internal/bundle"
	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/mock"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/models"
)

func newTestSurveySvc(t *testing.T, peers *stubPeers) (SurveyService, *mock.MockPeerAdapter, *mock.MockSurveyRepository, *events.Recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	peerAdapter := mock.NewMockPeerAdapter(ctrl)
	repo := mock.NewMockSurveyRepository(ctrl)
	rec := &events.Recorder{}

	return NewSurveyService(peers, peerAdapter, repo, rec, logger.Nop()), peerAdapter, repo, rec
}

func archive(t *testing.T, b models.SurveyBundle) io.ReadCloser {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bundle.Write(&buf, b))
	return io.NopCloser(&buf)
}

func TestSurveyURL(t *testing.T) {
	assert.Equal(t, "http://192.168.1.20:8080/surveys/tree%20survey", SurveyURL(testTarget, "tree survey"))
}

// ── ListRemoteSurveys ────────────────────────────────────────────────────────

func TestSurveyService_ListRemoteSurveys(t *testing.T) {
	svc, peerAdapter, _, rec := newTestSurveySvc(t, &stubPeers{target: testTarget})
	ctx := context.Background()

	peerAdapter.EXPECT().ListSurveys(ctx, testTarget).Return([]map[string]any{
		{"id": "trees", "name": "Trees"},
		{"id": float64(7), "name": "Benches"},
	}, nil)

	got, err := svc.ListRemoteSurveys(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "trees", got[0].ID)
	assert.Equal(t, "http://192.168.1.20:8080/surveys/trees", got[0].URL)
	assert.Equal(t, "Trees", got[0].Fields["name"])
	assert.Equal(t, "7", got[1].ID)
	assert.Equal(t, testTarget, got[1].Target)

	assert.Equal(t, []models.EventType{models.FetchingRemoteSurveyList, models.ReceivedRemoteSurveyList}, rec.Types())
	received, _ := rec.Last(models.ReceivedRemoteSurveyList)
	assert.Len(t, received.RemoteSurveys, 2)
}

func TestSurveyService_ListRemoteSurveys_Failure(t *testing.T) {
	svc, peerAdapter, _, rec := newTestSurveySvc(t, &stubPeers{target: testTarget})

	peerAdapter.EXPECT().ListSurveys(gomock.Any(), testTarget).Return(nil, adapter.ErrPeerUnreachable)

	_, err := svc.ListRemoteSurveys(context.Background())
	require.ErrorIs(t, err, ErrSurveyListFetch)
	assert.ErrorIs(t, err, adapter.ErrPeerUnreachable)
	assert.Equal(t, []models.EventType{models.FetchingRemoteSurveyList, models.FetchingRemoteSurveyListFailed}, rec.Types())
}

func TestSurveyService_ListRemoteSurveys_NoPeer(t *testing.T) {
	svc, _, _, rec := newTestSurveySvc(t, &stubPeers{err: ErrDiscovery})

	_, err := svc.ListRemoteSurveys(context.Background())
	assert.ErrorIs(t, err, ErrDiscovery)
	assert.Empty(t, rec.Types())
}

// ── FetchRemoteSurvey ────────────────────────────────────────────────────────

func TestSurveyService_FetchRemoteSurvey(t *testing.T) {
	svc, peerAdapter, repo, rec := newTestSurveySvc(t, &stubPeers{})
	ctx := context.Background()
	surveyURL := SurveyURL(testTarget, "trees")

	body := archive(t, models.SurveyBundle{
		Definition:  map[string]any{"name": "Trees", "fields": []any{"species"}},
		Icons:       map[string]any{"oak": "oak.png"},
		Attachments: map[string][]byte{"oak.png": []byte("png-bytes")},
	})
	peerAdapter.EXPECT().FetchBundle(ctx, surveyURL).Return(body, nil)

	var saved models.SurveyBundle
	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b models.SurveyBundle) error {
		saved = b
		return nil
	})

	got, err := svc.FetchRemoteSurvey(ctx, "trees", surveyURL)
	require.NoError(t, err)

	assert.Equal(t, "trees", got.ID)
	assert.Equal(t, "Trees", got.Definition["name"])
	assert.NotContains(t, got.Definition, models.SurveyIconsField)
	assert.Equal(t, []byte("png-bytes"), got.Attachments["oak.png"])
	assert.Equal(t, got, saved)

	assert.Equal(t, []models.EventType{models.FetchingRemoteSurvey, models.ReceivedRemoteSurvey}, rec.Types())
	received, _ := rec.Last(models.ReceivedRemoteSurvey)
	assert.Equal(t, "trees", received.SurveyID)
	assert.Equal(t, "trees", received.Survey.ID)
}

func TestSurveyService_FetchRemoteSurvey_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(peerAdapter *mock.MockPeerAdapter, repo *mock.MockSurveyRepository)
		wantErr error
	}{
		{
			name: "bundle fetch timeout",
			setup: func(peerAdapter *mock.MockPeerAdapter, _ *mock.MockSurveyRepository) {
				peerAdapter.EXPECT().FetchBundle(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrTimeout)
			},
			wantErr: adapter.ErrTimeout,
		},
		{
			name: "not a tar archive",
			setup: func(peerAdapter *mock.MockPeerAdapter, _ *mock.MockSurveyRepository) {
				body := io.NopCloser(strings.NewReader(strings.Repeat("garbage!", 100)))
				peerAdapter.EXPECT().FetchBundle(gomock.Any(), gomock.Any()).Return(body, nil)
			},
			wantErr: ErrBundleExtraction,
		},
		{
			name: "archive without survey.json",
			setup: func(peerAdapter *mock.MockPeerAdapter, _ *mock.MockSurveyRepository) {
				body := archive(t, models.SurveyBundle{Attachments: map[string][]byte{"a.png": {1}}})
				peerAdapter.EXPECT().FetchBundle(gomock.Any(), gomock.Any()).Return(body, nil)
			},
			wantErr: ErrSurveyDefinitionMissing,
		},
		{
			name: "store failure",
			setup: func(peerAdapter *mock.MockPeerAdapter, repo *mock.MockSurveyRepository) {
				body := archive(t, models.SurveyBundle{Definition: map[string]any{"name": "x"}})
				peerAdapter.EXPECT().FetchBundle(gomock.Any(), gomock.Any()).Return(body, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: ErrSurveyStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, peerAdapter, repo, rec := newTestSurveySvc(t, &stubPeers{})
			tt.setup(peerAdapter, repo)

			_, err := svc.FetchRemoteSurvey(context.Background(), "trees", "http://peer/surveys/trees")
			require.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, []models.EventType{models.FetchingRemoteSurvey, models.FetchingRemoteSurveyFailed}, rec.Types())
			failed, _ := rec.Last(models.FetchingRemoteSurveyFailed)
			assert.Equal(t, "trees", failed.SurveyID)
			assert.ErrorIs(t, failed.Err, tt.wantErr)
		})
	}
}

// ── Local surveys ────────────────────────────────────────────────────────────

func TestSurveyService_LocalSurveys(t *testing.T) {
	svc, _, repo, rec := newTestSurveySvc(t, &stubPeers{})
	ctx := context.Background()

	local := []models.LocalSurvey{{ID: "trees", Definition: map[string]any{"name": "Trees"}}}
	repo.EXPECT().List(ctx).Return(local, nil)

	got, err := svc.LocalSurveys(ctx)
	require.NoError(t, err)
	assert.Equal(t, local, got)

	repo.EXPECT().Delete(ctx, "trees").Return(nil)
	require.NoError(t, svc.DeleteLocalSurvey(ctx, "trees"))

	repo.EXPECT().Delete(ctx, "ghost").Return(store.ErrSurveyNotFound)
	err = svc.DeleteLocalSurvey(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrSurveyNotFound)

	repo.EXPECT().Clear(ctx).Return(nil)
	require.NoError(t, svc.ClearLocalSurveys(ctx))

	svc.ClearRemoteSurveys()

	assert.Equal(t, []models.EventType{
		models.LocalSurveyDeleted,
		models.LocalSurveysCleared,
		models.RemoteSurveysCleared,
	}, rec.Types())
}

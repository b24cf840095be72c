// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bundle reads and writes survey bundle archives: a tar stream with
// one survey.json definition entry plus any number of attachment entries.
package bundle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-field-sync/models"
)

// MaxAttachmentSize bounds a single attachment held in memory.
const MaxAttachmentSize = 32 << 20

// Extract reads a bundle archive from r until its end marker and returns the
// survey bundle it holds. Entries are consumed strictly in stream order and
// only one attachment is buffered at a time. The first error aborts the
// extraction and no partial bundle is returned.
//
// An archive without survey.json yields a bundle whose Definition is nil;
// callers decide whether that is acceptable.
func Extract(ctx context.Context, id string, r io.Reader) (models.SurveyBundle, error) {
	result := models.SurveyBundle{
		ID:          id,
		Attachments: make(map[string][]byte),
	}

	reader := NewReader(&contextReader{ctx: ctx, r: r})
	for {
		if err := ctx.Err(); err != nil {
			return models.SurveyBundle{}, err
		}

		entry, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return models.SurveyBundle{}, err
		}

		if entry.Name == models.SurveyDefinitionEntry {
			if result.Definition != nil {
				return models.SurveyBundle{}, ErrDuplicateDefinition
			}
			definition, icons, err := decodeDefinition(entry.Body)
			if err != nil {
				return models.SurveyBundle{}, err
			}
			definition["id"] = id
			result.Definition = definition
			result.Icons = icons
			continue
		}

		data, err := readAttachment(entry)
		if err != nil {
			return models.SurveyBundle{}, err
		}
		result.Attachments[entry.Name] = data
	}
}

// decodeDefinition parses the entry as a single JSON object and splits off
// the icons field.
func decodeDefinition(body io.Reader) (map[string]any, any, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var definition map[string]any
	if err := dec.Decode(&definition); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedDefinition, err)
	}
	if definition == nil {
		return nil, nil, fmt.Errorf("%w: not an object", ErrMalformedDefinition)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: trailing data", ErrMalformedDefinition)
	}

	icons := definition[models.SurveyIconsField]
	delete(definition, models.SurveyIconsField)

	return definition, icons, nil
}

func readAttachment(entry *Entry) ([]byte, error) {
	if entry.Size > MaxAttachmentSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrAttachmentTooLarge, entry.Name, entry.Size)
	}

	data, err := io.ReadAll(io.LimitReader(entry.Body, MaxAttachmentSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrMalformedArchive, entry.Name, err)
	}
	if len(data) > MaxAttachmentSize {
		return nil, fmt.Errorf("%w: %s", ErrAttachmentTooLarge, entry.Name)
	}
	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// contextReader fails reads once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

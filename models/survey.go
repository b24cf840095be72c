// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// SurveyDefinitionEntry is the archive entry holding the survey schema.
	SurveyDefinitionEntry = "survey.json"

	// SurveyIconsField is the reserved field of the survey schema that is
	// moved out of the definition into [SurveyBundle.Icons].
	SurveyIconsField = "icons"
)

// SurveyBundle is a survey definition plus its binary attachments as
// extracted from a bundle archive.
type SurveyBundle struct {
	// ID is the caller-supplied survey identifier.
	ID string `json:"id"`

	// Definition is the survey schema with the icons field removed and the
	// id added. It is nil when the archive carried no survey.json entry.
	Definition map[string]any `json:"definition,omitempty"`

	// Icons is the raw icons value removed from the schema.
	Icons any `json:"icons,omitempty"`

	// Attachments maps archive entry names to their contents.
	Attachments map[string][]byte `json:"-"`
}

// HasDefinition reports whether the bundle carried a survey.json entry.
func (b SurveyBundle) HasDefinition() bool {
	return b.Definition != nil
}

// RemoteSurvey is an entry of a peer's survey list, augmented with the URL
// it can be fetched from and the peer that listed it.
type RemoteSurvey struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields,omitempty"`
	URL    string         `json:"url"`
	Target PeerTarget     `json:"target"`
}

// LocalSurvey summarizes a survey stored on this device.
type LocalSurvey struct {
	ID          string         `json:"id"`
	Definition  map[string]any `json:"definition"`
	Attachments []string       `json:"attachments"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Name returns the human-readable survey name from the definition, if any.
func (s LocalSurvey) Name() string {
	name, _ := s.Definition["name"].(string)
	return name
}

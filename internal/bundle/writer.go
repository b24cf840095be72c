// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"archive/tar"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/go-field-sync/models"
)

// Write encodes b as a bundle archive: survey.json first, with icons folded
// back into the definition, then the attachments sorted by name.
func Write(w io.Writer, b models.SurveyBundle) error {
	tw := tar.NewWriter(w)
	modTime := time.Unix(0, 0)

	if b.Definition != nil {
		definition := make(map[string]any, len(b.Definition)+1)
		maps.Copy(definition, b.Definition)
		if b.Icons != nil {
			definition[models.SurveyIconsField] = b.Icons
		}

		data, err := json.Marshal(definition)
		if err != nil {
			return fmt.Errorf("error encoding survey definition: %w", err)
		}
		if err := writeEntry(tw, models.SurveyDefinitionEntry, data, modTime); err != nil {
			return err
		}
	}

	for _, name := range slices.Sorted(maps.Keys(b.Attachments)) {
		if err := writeEntry(tw, name, b.Attachments[name], modTime); err != nil {
			return err
		}
	}

	return tw.Close()
}

func writeEntry(tw *tar.Writer, name string, data []byte, modTime time.Time) error {
	hdr := &tar.Header{
		Name:     name,
		Mode:     0o644,
		Size:     int64(len(data)),
		ModTime:  modTime,
		Typeflag: tar.TypeReg,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("error writing header of %s: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return nil
}

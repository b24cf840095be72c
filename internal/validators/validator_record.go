// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-sync/models"
)

// RecordValidator validates observations, features, page requests and
// bounds.
type RecordValidator struct{}

// NewRecordValidator returns a [Validator] for the record types.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Observation:
		return v.validateObservation(value, fields...)
	case *models.Observation:
		return v.validateObservation(*value, fields...)

	case []models.Observation:
		return v.validateObservations(value, fields...)

	case models.Feature:
		return v.validateFeature(value, fields...)
	case *models.Feature:
		return v.validateFeature(*value, fields...)

	case models.PageRequest:
		return v.validatePageRequest(value, fields...)

	case models.Bounds:
		if !value.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidBounds, value)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateObservation(o models.Observation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldPosition, FieldCreatedAt, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if o.ID == "" {
				return ErrInvalidID
			}
		case FieldPosition:
			if err := validatePosition(o.Lat, o.Lon); err != nil {
				return err
			}
		case FieldCreatedAt:
			if o.CreatedAt.IsZero() {
				return ErrMissingCreatedAt
			}
		case FieldVersion:
			if o.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateObservations(list []models.Observation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldRecords:
			if len(list) == 0 {
				return ErrEmptyRecords
			}
			for i, o := range list {
				if err := v.validateObservation(o); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateFeature(f models.Feature, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldPosition, FieldVersion}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if f.ID == "" {
				return ErrInvalidID
			}
		case FieldType:
			if f.Type == "" {
				return ErrInvalidType
			}
		case FieldPosition:
			// unpositioned records are legal, they are just never queried
			if f.Lat == nil || f.Lon == nil {
				continue
			}
			if err := validatePosition(*f.Lat, *f.Lon); err != nil {
				return err
			}
		case FieldVersion:
			if f.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePageRequest(req models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOffset, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldOffset:
			if req.Offset < 0 {
				return ErrInvalidOffset
			}
		case FieldLimit:
			if req.Limit <= 0 || req.Limit > MaxPageLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePosition(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return ErrInvalidLatitude
	}
	if lon < -180 || lon > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

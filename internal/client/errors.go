// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command name Run does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command's operands are missing or
	// malformed.
	ErrUsage = errors.New("invalid command usage")
	// ErrSurveyNotListed is returned by fetch-survey when the peer does not
	// list the requested survey.
	ErrSurveyNotListed = errors.New("survey is not listed by the peer")
)

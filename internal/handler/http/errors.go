// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidPageParameter is returned when an offset or limit query
// parameter is not an integer.
var ErrInvalidPageParameter = errors.New("invalid page parameter")

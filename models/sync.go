// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Progress is a replication progress tick: Done steps out of Total.
type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// Fraction returns Done/Total clamped to [0, 1]. A zero Total yields 0 until
// Done is positive, then 1.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		if p.Done > 0 {
			return 1
		}
		return 0
	}

	f := float64(p.Done) / float64(p.Total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// ProgressFunc receives replication progress ticks.
type ProgressFunc func(Progress)

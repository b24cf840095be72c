// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// renderer styles command output. Colors are dropped when out is not a
// terminal.
type renderer struct {
	lg *lipgloss.Renderer

	header  lipgloss.Style
	cell    lipgloss.Style
	key     lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newRenderer(out io.Writer) *renderer {
	lg := lipgloss.NewRenderer(out)

	return &renderer{
		lg:      lg,
		header:  lg.NewStyle().Bold(true).Padding(0, 1),
		cell:    lg.NewStyle().Padding(0, 1),
		key:     lg.NewStyle().Bold(true),
		success: lg.NewStyle().Foreground(lipgloss.Color("10")),
		failure: lg.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (r *renderer) table(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return "(none)"
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.lg.NewStyle()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			return r.cell
		}).
		String()
}

// keyValues renders one aligned "key: value" line per pair.
func (r *renderer) keyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0])+1)
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, r.key.Width(width).Render(p[0]+":")+" "+p[1])
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) ok(s string) string { return r.success.Render(s) }

func (r *renderer) failed(s string) string { return r.failure.Render(s) }

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-field-sync/internal/tiles"
	"github.com/MKhiriev/go-field-sync/models"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "field-sync",
		Short:         "Field device client: sync map data, surveys and observations with a nearby peer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("%w: no command given", ErrUsage)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		a.syncCommand(),
		a.surveysCommand(),
		a.fetchSurveyCommand(),
		a.viewportCommand(),
		a.selectCommand(),
		a.observeCommand(),
		a.versionCommand(),
	)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	return root
}

// usageArgs makes arity errors match ErrUsage.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

// positionalOnly turns off flag parsing so that negative coordinates such as
// "-33.8" or "-180,-85,180,85" reach the command as arguments. A leading "--"
// is dropped and "-h"/"--help" still print the help.
func positionalOnly(cmd *cobra.Command) *cobra.Command {
	cmd.DisableFlagParsing = true

	check, run := cmd.Args, cmd.RunE
	cmd.Args = func(c *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return nil
		}
		return check(c, trimDashes(args))
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return c.Help()
		}
		return run(c, trimDashes(args))
	}

	return cmd
}

func wantsHelp(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

func trimDashes(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

// ── sync ─────────────────────────────────────────────────────────────────────

func (a *App) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replicate the peer's dataset and exchange observations",
		Args:  usageArgs(cobra.ExactArgs(0)),
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataVersion := a.state.OSMDataVersion()
			err := a.services.Sync.Replicate(cmd.Context(), a.state.CoordinatorTarget())
			a.printSyncStatus(cmd, err, a.state.OSMDataVersion() != dataVersion)
			return err
		},
	}
}

func (a *App) printSyncStatus(cmd *cobra.Command, err error, dataChanged bool) {
	out := cmd.OutOrStdout()
	r := newRenderer(out)

	target := "none"
	if t := a.state.CoordinatorTarget(); t != nil {
		target = t.String()
	}
	dataset := "none"
	if aoi := a.state.AreaOfInterest(); aoi != nil && aoi.UUID() != "" {
		dataset = aoi.UUID()
	}
	lastSynced := "never"
	if at := a.state.ObservationsLastSynced(); !at.IsZero() {
		lastSynced = at.Format(time.RFC3339)
	}

	mapData := "unchanged"
	if dataChanged {
		mapData = "updated"
	}

	status := a.state.Sync()
	outcome := r.ok("done")
	if err != nil {
		outcome = r.failed(err.Error())
	}

	fmt.Fprintln(out, r.keyValues([][2]string{
		{"peer", target},
		{"dataset", dataset},
		{"progress", fmt.Sprintf("%.0f%%", status.Progress.Fraction()*100)},
		{"map data", mapData},
		{"observations synced", lastSynced},
		{"result", outcome},
	}))
}

// ── surveys ──────────────────────────────────────────────────────────────────

func (a *App) surveysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surveys",
		Short: "List the surveys offered by the peer",
		Args:  usageArgs(cobra.ExactArgs(0)),
		RunE: func(cmd *cobra.Command, _ []string) error {
			surveys, err := a.services.Surveys.ListRemoteSurveys(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(surveys))
			for _, s := range surveys {
				name, _ := s.Fields["name"].(string)
				rows = append(rows, []string{s.ID, name, s.URL})
			}
			fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd.OutOrStdout()).table([]string{"ID", "NAME", "URL"}, rows))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "local",
			Short: "List the surveys stored on this device",
			Args:  usageArgs(cobra.ExactArgs(0)),
			RunE: func(cmd *cobra.Command, _ []string) error {
				surveys, err := a.services.Surveys.LocalSurveys(cmd.Context())
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(surveys))
				for _, s := range surveys {
					rows = append(rows, []string{s.ID, s.Name(), strconv.Itoa(len(s.Attachments)), s.CreatedAt.Format(time.RFC3339)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd.OutOrStdout()).table([]string{"ID", "NAME", "ATTACHMENTS", "STORED"}, rows))
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a stored survey",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.services.Surveys.DeleteLocalSurvey(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted survey %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every stored survey",
			Args:  usageArgs(cobra.ExactArgs(0)),
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.services.Surveys.ClearLocalSurveys(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "cleared local surveys")
				return nil
			},
		},
	)

	return cmd
}

// ── fetch-survey ─────────────────────────────────────────────────────────────

func (a *App) fetchSurveyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-survey <id> [url]",
		Short: "Download a survey bundle and store it on this device",
		Long:  "Without a url the survey is looked up in the peer's survey list.",
		Args:  usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			var surveyURL string
			if len(args) == 2 {
				surveyURL = args[1]
			} else {
				surveys, err := a.services.Surveys.ListRemoteSurveys(ctx)
				if err != nil {
					return err
				}
				for _, s := range surveys {
					if s.ID == id {
						surveyURL = s.URL
						break
					}
				}
				if surveyURL == "" {
					return fmt.Errorf("%w: %s", ErrSurveyNotListed, id)
				}
			}

			survey, err := a.services.Surveys.FetchRemoteSurvey(ctx, id, surveyURL)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "stored survey %s with %d attachments\n", survey.ID, len(survey.Attachments))
			return nil
		},
	}
}

// ── viewport ─────────────────────────────────────────────────────────────────

func (a *App) viewportCommand() *cobra.Command {
	return positionalOnly(&cobra.Command{
		Use:   "viewport <west,south,east,north>",
		Short: "Load features and observations for the tiles covering the bounds",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := models.ParseBounds(args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}

			if err = a.services.Tiles.UpdateVisibleBounds(cmd.Context(), bounds); err != nil {
				return err
			}
			a.services.Tiles.Wait()

			var features, observations int
			for _, f := range a.state.Features() {
				if f.Lat != nil && f.Lon != nil && bounds.Contains(*f.Lat, *f.Lon) {
					features++
				}
			}
			for _, o := range a.state.Observations() {
				if bounds.Contains(o.Lat, o.Lon) {
					observations++
				}
			}

			out := cmd.OutOrStdout()
			r := newRenderer(out)
			fmt.Fprintln(out, r.keyValues([][2]string{
				{"bounds", bounds.String()},
				{"zoom", strconv.Itoa(int(a.services.Tiles.Zoom()))},
				{"tiles loaded", fmt.Sprintf("%d features, %d observations",
					a.services.Tiles.Count(models.QueryFeatures, models.TilePresent),
					a.services.Tiles.Count(models.QueryObservations, models.TilePresent))},
				{"features", strconv.Itoa(features)},
				{"observations", strconv.Itoa(observations)},
			}))

			if failed := a.failedTiles(); len(failed) > 0 {
				fmt.Fprintln(out, r.table([]string{"KIND", "TILE", "BOUNDS", "ERROR"}, failed))
			}
			return nil
		},
	})
}

// failedTiles lists the tiles whose last query failed, features first.
func (a *App) failedTiles() [][]string {
	var rows [][]string
	for _, kind := range []models.QueryKind{models.QueryFeatures, models.QueryObservations} {
		failures := a.state.TileErrors(kind)
		for _, key := range slices.Sorted(maps.Keys(failures)) {
			area := "?"
			if tile, err := tiles.ParseKey(key); err == nil {
				area = tiles.BoundsOf(tile).String()
			}
			rows = append(rows, []string{string(kind), string(key), area, failures[key].Error()})
		}
	}
	return rows
}

// ── select ───────────────────────────────────────────────────────────────────

func (a *App) selectCommand() *cobra.Command {
	return positionalOnly(&cobra.Command{
		Use:   "select <west,south,east,north>",
		Short: "Print the features and observations inside the bounds as GeoJSON",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := models.ParseBounds(args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}

			selection := a.services.Bbox.SelectBbox(cmd.Context(), bounds)

			data, err := selectionGeoJSON(selection)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})
}

// ── observe ──────────────────────────────────────────────────────────────────

func (a *App) observeCommand() *cobra.Command {
	return positionalOnly(&cobra.Command{
		Use:   "observe <lat> <lon> [key=value...]",
		Short: "Record an observation at a position",
		Long:  "Values that parse as JSON (numbers, booleans) are stored typed, anything else as a string.",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: latitude %q", ErrUsage, args[0])
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: longitude %q", ErrUsage, args[1])
			}
			properties, err := parseProperties(args[2:])
			if err != nil {
				return err
			}

			draft := models.Observation{Lat: lat, Lon: lon, Properties: properties}
			a.services.Observations.Initialize(draft)

			saved, err := a.services.Observations.Save(cmd.Context(), draft)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved observation %s\n", saved.ID)
			return nil
		},
	})
}

func parseProperties(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	properties := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: property %q is not key=value", ErrUsage, pair)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		properties[key] = value
	}

	return properties, nil
}

// ── version ──────────────────────────────────────────────────────────────────

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  usageArgs(cobra.ExactArgs(0)),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "field-sync %s (commit: %s, built: %s)\n",
				orNA(a.build.BuildVersion()), orNA(a.build.BuildCommit()), orNA(a.build.BuildDate()))
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

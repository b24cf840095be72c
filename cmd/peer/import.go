// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-field-sync/internal/service"
	"github.com/MKhiriev/go-field-sync/models"
)

var errUsage = errors.New("invalid command usage")

// runImport loads a dataset or a survey bundle into the peer's store
// instead of serving.
func runImport(ctx context.Context, services *service.Services, args []string, out io.Writer) error {
	root := &cobra.Command{
		Use:           "field-sync-peer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		&cobra.Command{
			Use:   "import-features <file.geojson>",
			Short: "Replace the dataset with the features of a GeoJSON FeatureCollection",
			Args:  exactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				meta, err := services.Dataset.ImportFeatures(cmd.Context(), f, filepath.Base(args[0]))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "imported %v features as dataset %s\n", meta[service.MetaFeaturesField], models.MetaUUID(meta))
				return nil
			},
		},
		&cobra.Command{
			Use:   "import-survey <id> <bundle.tar>",
			Short: "Store a survey bundle under id",
			Args:  exactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()

				survey, err := services.Surveys.ImportSurvey(cmd.Context(), args[0], f)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "imported survey %s with %d attachments\n", survey.ID, len(survey.Attachments))
				return nil
			},
		},
	)

	root.SetArgs(args)
	root.SetOut(out)
	return root.ExecuteContext(ctx)
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}

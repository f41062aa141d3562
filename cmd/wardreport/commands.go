package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/aqi-insights-service/internal/domain"
	"github.com/couchcryptid/aqi-insights-service/internal/wardstore"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	file   string
	indent bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "wardreport",
		Short:         "Derive air-quality insights from a ward file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "ward collection (.json, .yaml or .yml)")
	cmd.PersistentFlags().BoolVar(&opts.indent, "indent", true, "indent JSON output")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(newCitizenCommand(opts))
	cmd.AddCommand(newMonitorCommand(opts))

	return cmd
}

func newCitizenCommand(opts *rootOptions) *cobra.Command {
	var wardID string

	cmd := &cobra.Command{
		Use:   "citizen",
		Short: "Print nearby wards, hotspots and safe zones for one ward",
		Long: `Print the citizen view for a reference ward: the five closest wards,
the hotspots (AQI above 150) and safe zones (AQI 100 or below) among them.
Without --ward the first ward in the file is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wards, err := wardstore.LoadFile(opts.file)
			if err != nil {
				return err
			}
			ref, err := domain.SelectReference(wards, wardID)
			if err != nil {
				return fmt.Errorf("select ward %q: %w", wardID, err)
			}
			return writeJSON(cmd.OutOrStdout(), opts.indent, domain.BuildCitizenInsight(ref, wards))
		},
	}

	cmd.Flags().StringVarP(&wardID, "ward", "w", "", "reference ward id (default: first ward)")
	return cmd
}

func newMonitorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Print the dominant pollutant and trend for every ward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wards, err := wardstore.LoadFile(opts.file)
			if err != nil {
				return err
			}
			summaries := make([]domain.MonitorSummary, 0, len(wards))
			for _, w := range wards {
				summaries = append(summaries, domain.SummarizeWard(w))
			}
			return writeJSON(cmd.OutOrStdout(), opts.indent, summaries)
		},
	}
}

func writeJSON(w io.Writer, indent bool, v any) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

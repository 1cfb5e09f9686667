package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/fitreport/internal/config"
	"github.com/rshade/fitreport/internal/engine"
	"github.com/rshade/fitreport/internal/ingest"
	"github.com/rshade/fitreport/internal/metrics"
	"github.com/rshade/fitreport/internal/tui"
	"github.com/rshade/fitreport/internal/workout"
)

// runReportView is swapped out in tests.
//
//nolint:gochecknoglobals // Test seam for the interactive view.
var runReportView = tui.RunReportView

// reportParams holds the flags of the report command.
type reportParams struct {
	File            string
	Sample          bool
	Output          string
	Lang            string
	Concurrency     int
	ContinueOnError bool
	MetricsFile     string
	Interactive     bool
}

// NewReportCmd creates the report command.
//
// Packages come from exactly one source: positional TAG ARGS..., --file, or
// --sample. Flags left unset fall back to the configuration file, then to
// built-in defaults.
func NewReportCmd() *cobra.Command {
	var params reportParams

	cmd := &cobra.Command{
		Use:   "report [TAG ARGS...]",
		Short: "Summarize sensor packages into workout reports",
		Long: `Summarize sensor packages into workout reports.

A package is a workout tag followed by its numeric arguments:
  SWM action duration_h weight_kg pool_length_m pool_lap_count
  RUN action duration_h weight_kg
  WLK action duration_h weight_kg height_cm

Packages are read from the command line, from a file (--file, YAML/JSON by
extension, line-oriented text otherwise, "-" for stdin), or from the built-in
sample set (--sample). Reports are printed in input order.

Flags go before TAG: everything after the tag is read as package arguments,
so negative values need no escaping.`,
		Example: `  # One package from the command line
  fitreport report RUN 15000 1 75

  # Flags first, then the package
  fitreport report --lang ru --output table RUN 15000 1 75

  # A YAML file as JSON
  fitreport report --file week.yaml --output json

  # Keep going past invalid packages (exit status 2 if any failed)
  fitreport report --file day.txt --continue-on-error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeReport(cmd, args, params)
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVarP(&params.File, "file", "f", "", `package file (YAML, JSON or text; "-" for stdin)`)
	cmd.Flags().BoolVar(&params.Sample, "sample", false, "use the built-in sample packages")
	cmd.Flags().StringVarP(&params.Output, "output", "o", config.GetDefaultOutputFormat(),
		"Output format ("+strings.Join(config.OutputFormats(), ", ")+")")
	cmd.Flags().StringVar(&params.Lang, "lang", config.GetLanguage(),
		"report language for text output (en, ru)")
	cmd.Flags().IntVarP(&params.Concurrency, "concurrency", "c", 0,
		"packages summarized in parallel (0 = use config)")
	cmd.Flags().BoolVar(&params.ContinueOnError, "continue-on-error", false,
		"report every valid package and list failures instead of stopping at the first")
	cmd.Flags().StringVar(&params.MetricsFile, "metrics-file", "",
		"write Prometheus text-format metrics to this file after the run")
	cmd.Flags().BoolVarP(&params.Interactive, "interactive", "i", false,
		"browse the reports in an interactive table")

	return cmd
}

// executeReport runs the report command end to end.
func executeReport(cmd *cobra.Command, args []string, params reportParams) error {
	ctx := cmd.Context()

	if !slices.Contains(config.OutputFormats(), params.Output) {
		return fmt.Errorf("unsupported output format %q (supported: %s)",
			params.Output, strings.Join(config.OutputFormats(), ", "))
	}
	if params.Lang != "" && !workout.IsSupportedLanguage(params.Lang) {
		return fmt.Errorf("unsupported report language %q (supported: %v)",
			params.Lang, workout.SupportedLanguages())
	}

	pkgs, err := collectPackages(ctx, cmd, args, params)
	if err != nil {
		return err
	}

	engineCfg := config.GetEngineConfig()
	opts := engine.Options{
		Concurrency:     engineCfg.Concurrency,
		ContinueOnError: engineCfg.ContinueOnError,
	}
	if params.Concurrency > 0 {
		opts.Concurrency = params.Concurrency
	}
	if cmd.Flags().Changed("continue-on-error") {
		opts.ContinueOnError = params.ContinueOnError
	}

	var recorder *metrics.Recorder
	if params.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		opts.Observer = recorder
	}

	logger.Debug().
		Ctx(ctx).
		Int("package_count", len(pkgs)).
		Str("output", params.Output).
		Msg("running report")

	summary, runErr := engine.New(opts).Run(ctx, pkgs)

	if recorder != nil {
		if err = recorder.WriteTextfile(params.MetricsFile); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if runErr != nil {
		return runErr
	}

	if params.Interactive {
		err = runReportView(summary.Reports(), failureLines(summary), workout.MatchLanguage(params.Lang))
	} else {
		err = renderSummary(cmd, params.Output, params.Lang, summary)
	}
	if err != nil {
		return err
	}

	if summary.HasFailures() {
		return &ExitError{
			Code: ExitCodePartialFailure,
			Reason: fmt.Sprintf("%d of %d packages could not be summarized",
				len(summary.Failures), len(summary.Results)),
		}
	}
	return nil
}

// collectPackages resolves the single package source selected by args and
// flags.
func collectPackages(ctx context.Context, cmd *cobra.Command, args []string, params reportParams) ([]ingest.Package, error) {
	sources := 0
	if len(args) > 0 {
		sources++
	}
	if params.File != "" {
		sources++
	}
	if params.Sample {
		sources++
	}

	switch {
	case sources == 0:
		return nil, errors.New("no packages given: pass TAG ARGS..., --file or --sample")
	case sources > 1:
		return nil, errors.New("positional packages, --file and --sample are mutually exclusive")
	}

	switch {
	case params.Sample:
		return ingest.SamplePackages(), nil
	case params.File != "":
		return ingest.LoadPackages(ctx, params.File, cmd.InOrStdin())
	default:
		pkg, err := ingest.ParseFields(args)
		if err != nil {
			return nil, err
		}
		pkg.Source = "args"
		return []ingest.Package{pkg}, nil
	}
}

// failureLines formats failures for display, one per package.
func failureLines(summary *engine.Summary) []string {
	lines := make([]string, len(summary.Failures))
	for i, f := range summary.Failures {
		lines[i] = f.Error()
	}
	return lines
}

// NewSampleCmd creates the sample command, which prints the reports of the
// built-in packages exactly as the tracker console shows them, in the
// configured report language.
func NewSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print reports for the built-in sample packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang := workout.MatchLanguage(config.GetLanguage())
			for _, pkg := range ingest.SamplePackages() {
				report, err := workout.CreateRecordAndReport(pkg.Type, pkg.Data)
				if err != nil {
					return fmt.Errorf("%s: %w", pkg.Source, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), report.MessageFor(lang))
			}
			return nil
		},
	}
}

// NewKindsCmd creates the kinds command listing workout tags and arguments.
func NewKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List workout kinds and their package arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderKinds(cmd.OutOrStdout())
		},
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/fitreport/internal/config"
	"github.com/rshade/fitreport/internal/engine"
	"github.com/rshade/fitreport/internal/metrics"
	"github.com/rshade/fitreport/internal/tui"
	"github.com/rshade/fitreport/internal/workout"
)

// tabwriter settings for plain tables.
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
)

// jsonFailure is the serialized form of a failed package.
type jsonFailure struct {
	Index  int    `json:"index"`
	Source string `json:"source,omitempty"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

// jsonDocument is the --output json shape.
type jsonDocument struct {
	Reports []workout.Report `json:"reports"`
	Errors  []jsonFailure    `json:"errors"`
	Stats   jsonStats        `json:"stats"`
}

type jsonStats struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// ndjsonLine is one --output ndjson record; exactly one of Report and Error
// is set.
type ndjsonLine struct {
	Index  int             `json:"index"`
	Source string          `json:"source,omitempty"`
	Report *workout.Report `json:"report,omitempty"`
	Error  *jsonFailure    `json:"error,omitempty"`
}

// renderSummary writes the summary to stdout in the requested format.
// Text and table formats list failures on stderr; JSON formats carry them
// in the document.
func renderSummary(cmd *cobra.Command, format, lang string, summary *engine.Summary) error {
	w := cmd.OutOrStdout()

	var err error
	switch format {
	case config.FormatText:
		err = renderText(w, lang, summary.Reports())
	case config.FormatTable:
		err = renderTable(w, summary.Reports())
	case config.FormatJSON:
		return renderJSON(w, summary)
	case config.FormatNDJSON:
		return renderNDJSON(w, summary)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return err
	}

	renderFailures(cmd.ErrOrStderr(), summary.Failures)
	return nil
}

// renderText writes one report line per package.
func renderText(w io.Writer, lang string, reports []workout.Report) error {
	tag := workout.MatchLanguage(lang)
	for _, r := range reports {
		if _, err := fmt.Fprintln(w, r.MessageFor(tag)); err != nil {
			return err
		}
	}
	return nil
}

// renderTable writes a styled table on terminals and aligned columns
// otherwise.
func renderTable(w io.Writer, reports []workout.Report) error {
	if isWriterTerminal(w) {
		_, err := fmt.Fprintln(w, tui.RenderReportTable(reports))
		return err
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tui.ReportHeaders(), "\t"))
	for i, r := range reports {
		fmt.Fprintln(tw, strings.Join(tui.ReportRow(i, r), "\t"))
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, summary *engine.Summary) error {
	doc := jsonDocument{
		Reports: summary.Reports(),
		Errors:  make([]jsonFailure, 0, len(summary.Failures)),
		Stats: jsonStats{
			Total:     summary.Stats.Total,
			Succeeded: summary.Stats.Succeeded,
			Failed:    summary.Stats.Failed,
		},
	}
	for _, f := range summary.Failures {
		doc.Errors = append(doc.Errors, toJSONFailure(f))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func renderNDJSON(w io.Writer, summary *engine.Summary) error {
	enc := json.NewEncoder(w)
	for _, r := range summary.Results {
		line := ndjsonLine{Index: r.Index, Source: r.Package.Source}
		if r.OK() {
			report := r.Report
			line.Report = &report
		} else {
			var failure jsonFailure
			for _, f := range summary.Failures {
				if f.Index == r.Index {
					failure = toJSONFailure(f)
					break
				}
			}
			line.Error = &failure
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}

func toJSONFailure(f *engine.PackageError) jsonFailure {
	return jsonFailure{
		Index:  f.Index,
		Source: f.Package.Source,
		Type:   f.Package.Type,
		Reason: metrics.Reason(f.Err),
		Error:  f.Err.Error(),
	}
}

// renderFailures lists failed packages, one per line.
func renderFailures(w io.Writer, failures []*engine.PackageError) {
	for _, f := range failures {
		_, _ = fmt.Fprintf(w, "error: %v\n", f)
	}
}

// renderKinds prints the workout kind table.
func renderKinds(w io.Writer) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "TAG\tNAME\tARGUMENTS")
	for _, k := range workout.Kinds() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Tag, k.Name, strings.Join(k.ArgNames, " "))
	}
	return tw.Flush()
}

// isWriterTerminal reports whether w is an *os.File attached to a terminal.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

package templater

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/templater/pkg/style"
	"github.com/arthur-debert/templater/pkg/types"
)

// renderResult prints per-file statuses and the summary at -v, then the
// unused flag block whenever some active flag went unused
func renderResult(w io.Writer, result *types.RenderTreeResult, verbosity int) error {
	if verbosity > 0 {
		if err := renderFiles(w, result); err != nil {
			return err
		}
	}

	if result.DryRun {
		fmt.Fprintln(w, style.Render("Warning", strings.TrimPrefix(MsgDryRunNotice, "\n")))
	}

	if result.Report.HasUnused() {
		renderUnused(w, result.Report)
	}
	return nil
}

func renderFiles(w io.Writer, result *types.RenderTreeResult) error {
	written := MsgWritten
	if result.DryRun {
		written = MsgWouldWrite
	}

	for _, f := range result.Files {
		switch f.Status {
		case types.StatusWritten:
			fmt.Fprintf(w, "%s %s\n", style.Render("Written", written+":"), style.Render("Path", f.RelPath))
		case types.StatusSkipped:
			fmt.Fprintf(w, "%s %s\n", style.Render("Skipped", MsgSkippedEmpty+":"), style.Render("Muted", f.RelPath))
		}
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(pterm.TableData{
			{MsgSummaryStatus, MsgSummaryFiles},
			{MsgWritten, strconv.Itoa(result.Count(types.StatusWritten))},
			{MsgSkippedEmpty, strconv.Itoa(result.Count(types.StatusSkipped))},
		}).
		Srender()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s\n", table)
	return nil
}

func renderUnused(w io.Writer, report *types.UsageReport) {
	fmt.Fprintf(w, "\n%s\n", style.Render("Warning", MsgUnusedFlags))
	for _, u := range report.Unused {
		line := fmt.Sprintf(MsgUnusedFlag, style.Render("Flag", u.Name))
		if u.Suggestion != "" {
			line += fmt.Sprintf(MsgDidYouMean, style.Render("Suggestion", u.Suggestion))
		}
		fmt.Fprintln(w, line)
	}

	if len(report.Used) > 0 {
		fmt.Fprintf(w, "\n%s\n", style.Render("Muted", MsgUsedFlags))
		fmt.Fprintln(w, style.Render("Item", strings.Join(report.Used, " ")))
	}

	// The declared listing only adds information when it names flags that
	// no evaluated condition referenced.
	used := types.NewFlagSet(report.Used...)
	for _, d := range report.Declared {
		if !used.Has(d) {
			fmt.Fprintf(w, "\n%s\n", style.Render("Muted", MsgDeclaredFlags))
			fmt.Fprintln(w, style.Render("Item", strings.Join(report.Declared, " ")))
			break
		}
	}
}

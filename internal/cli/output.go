package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"pahunapath/internal/listing"
	"pahunapath/pkg/utils"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func formatCreated(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return utils.FormatDisplay(t)
}

func printReport(w io.Writer, report listing.BatchReport) {
	fmt.Fprintln(w, report.Summary())
	if detail := report.Detail(); detail != "" {
		fmt.Fprint(w, detail)
	}
}

func reportError(report listing.BatchReport) error {
	switch report.Status() {
	case listing.BatchPartial, listing.BatchFailed:
		return fmt.Errorf("%d of %d deletions failed", len(report.Failed()), len(report.Outcomes))
	default:
		return nil
	}
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func describe(verb string, labels []string, one, many string) string {
	if len(labels) == 1 {
		return fmt.Sprintf("%s %s %s", verb, one, labels[0])
	}
	return fmt.Sprintf("%s %d %s: %s", verb, len(labels), plural(len(labels), one, many), strings.Join(labels, ", "))
}

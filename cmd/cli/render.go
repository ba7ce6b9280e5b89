package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/hamed0406/uptimemonitor/internal/client"
	"github.com/hamed0406/uptimemonitor/internal/domain"
)

const msgNoHistory = "No checks recorded yet."

type renderer func(out io.Writer, entries []domain.CheckResult, now time.Time) error

var renderers = map[string]renderer{
	"table": renderTable,
	"json":  renderJSON,
	"yaml":  renderYAML,
}

func renderHistory(out io.Writer, format string, entries []domain.CheckResult, now time.Time) error {
	r, ok := renderers[format]
	if !ok {
		return fmt.Errorf("unsupported output %q", format)
	}
	return r(out, entries, now)
}

func renderTable(out io.Writer, entries []domain.CheckResult, now time.Time) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, msgNoHistory)
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tCHECK\tSTATUS\tID")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			humanize.RelTime(e.Timestamp, now, "ago", "from now"), e.CheckType, e.Status, e.ID)
	}
	return tw.Flush()
}

func renderJSON(out io.Writer, entries []domain.CheckResult, _ time.Time) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func renderYAML(out io.Writer, entries []domain.CheckResult, _ time.Time) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

func renderCheck(out io.Writer, rep client.CheckReply) {
	mark := "✔"
	if rep.Code != 200 {
		mark = "✖"
	}
	fmt.Fprintf(out, "%s %s (HTTP %d): %s\n", mark, rep.Status, rep.Code, rep.Message)
}

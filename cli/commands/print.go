package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/rotasegura/beacon/internal/probe"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printProbeResults writes one line per probe in the order they ran
func printProbeResults(w io.Writer, results []probe.Result) {
	tw := newTabWriter(w)

	fmt.Fprintln(tw, bold("NO\tHOST\tPORT\tRATIONALE\tRESULT\tLATENCY"))

	for i, r := range results {
		outcome := green("online")

		if !r.Reachable {
			text := string(r.Error)

			if r.Status != 0 {
				text += " " + strconv.Itoa(r.Status)
			}

			outcome = red(text)
		}

		fmt.Fprintf(
			tw,
			"%d\t%s\t%d\t%s\t%s\t%s\n",
			i+1,
			r.Candidate.Host,
			r.Port,
			r.Candidate.Rationale,
			outcome,
			r.Latency.Round(time.Millisecond),
		)
	}

	tw.Flush()
}

// printJSON pretty prints raw JSON, falling back to the raw bytes
func printJSON(w io.Writer, raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}

	out := bytes.Buffer{}

	if err := json.Indent(&out, raw, "", "  "); err != nil {
		fmt.Fprintln(w, string(raw))
		return
	}

	fmt.Fprintln(w, out.String())
}

// encodeJSON writes v as indented JSON
func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

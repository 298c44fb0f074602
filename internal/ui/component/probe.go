package component

import (
	"strconv"
	"time"

	"github.com/rivo/tview"
	"github.com/rotasegura/beacon/internal/discovery"
	"github.com/rotasegura/beacon/internal/ui/style"
)

// ProbeTable live view of the probes of the current sweep
type ProbeTable struct {
	table   *tview.Table
	sweepID string
	seen    map[string]bool
}

// NewProbeTable returns a new instance of ProbeTable
func NewProbeTable() *ProbeTable {
	columnHeaders := []string{"NO", "HOST", "PORT", "RATIONALE", "RESULT", "LATENCY"}

	return &ProbeTable{
		table: createTable("probes", columnHeaders),
		seen:  map[string]bool{},
	}
}

// Primitive returns the root primitive for ProbeTable
func (t *ProbeTable) Primitive() tview.Primitive {
	return t.table
}

// StartSweep clears the table for a new sweep
func (t *ProbeTable) StartSweep(payload discovery.SweepStartedPayload) {
	t.begin(payload.SweepID)
}

// UpdateTable adds a completed probe. Events are not guaranteed to arrive
// in order so rows are placed by index and the first event of a sweep
// starts it. Results from earlier sweeps are ignored.
func (t *ProbeTable) UpdateTable(payload discovery.ProbeCompletedPayload) {
	if !t.begin(payload.SweepID) {
		return
	}

	color := style.ColorDimGrey

	if payload.Result.Reachable {
		color = style.ColorMediumGreen
	}

	setRow(t.table, firstDataRow+payload.Index, ProbeRow(payload), color)
}

// ProbeRow formats a completed probe as table columns
func ProbeRow(payload discovery.ProbeCompletedPayload) []string {
	result := payload.Result

	outcome := "online"

	if !result.Reachable {
		outcome = string(result.Error)

		if result.Status != 0 {
			outcome += " " + strconv.Itoa(result.Status)
		}
	}

	return []string{
		strconv.Itoa(payload.Index + 1),
		result.Candidate.Host,
		strconv.Itoa(result.Port),
		string(result.Candidate.Rationale),
		outcome,
		result.Latency.Round(time.Millisecond).String(),
	}
}

// begin switches to sweep id unless it was already seen. Returns whether
// id is the current sweep.
func (t *ProbeTable) begin(id string) bool {
	if id == t.sweepID {
		return true
	}

	if t.seen[id] {
		return false
	}

	t.seen[id] = true
	t.sweepID = id

	clearRows(t.table)
	t.table.SetTitle("probes " + shortID(id))

	return true
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

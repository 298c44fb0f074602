package component

import (
	"strconv"
	"time"

	"github.com/rivo/tview"
	"github.com/rotasegura/beacon/internal/journal"
	"github.com/rotasegura/beacon/internal/ui/style"
)

// SweepTable lists the sweeps recorded by this process
type SweepTable struct {
	table *tview.Table
}

// NewSweepTable returns a new instance of SweepTable
func NewSweepTable() *SweepTable {
	columnHeaders := []string{"ID", "STARTED", "OUTCOME", "HOST", "PROBES", "DURATION", "FORCED"}

	return &SweepTable{
		table: createTable("sweeps", columnHeaders),
	}
}

// Primitive returns the root primitive for SweepTable
func (t *SweepTable) Primitive() tview.Primitive {
	return t.table
}

// UpdateTable replaces the rows with sweeps, newest first
func (t *SweepTable) UpdateTable(sweeps []*journal.Sweep) {
	clearRows(t.table)

	for i := len(sweeps) - 1; i >= 0; i-- {
		s := sweeps[i]
		color := style.ColorWhite

		switch s.Outcome {
		case journal.OutcomeResolved:
			color = style.ColorMediumGreen
		case journal.OutcomeExhausted, journal.OutcomeCanceled:
			color = style.ColorRed
		}

		setRow(t.table, t.table.GetRowCount(), SweepRow(s), color)
	}
}

// SweepRow formats a sweep as table columns
func SweepRow(s *journal.Sweep) []string {
	host := s.Host

	if host == "" {
		host = "-"
	}

	return []string{
		shortID(s.ID),
		s.StartedAt.Local().Format(time.TimeOnly),
		string(s.Outcome),
		host,
		strconv.Itoa(len(s.Probes)),
		s.Duration().Round(time.Millisecond).String(),
		strconv.FormatBool(s.Forced),
	}
}

package component

import (
	"strconv"

	"github.com/rivo/tview"
	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/ui/style"
)

// CandidateTable shows the ordered candidates of the next sweep
type CandidateTable struct {
	table *tview.Table
}

// NewCandidateTable returns a new instance of CandidateTable
func NewCandidateTable() *CandidateTable {
	columnHeaders := []string{"PRIORITY", "HOST", "RATIONALE"}

	return &CandidateTable{
		table: createTable("candidates", columnHeaders),
	}
}

// Primitive returns the root primitive for CandidateTable
func (t *CandidateTable) Primitive() tview.Primitive {
	return t.table
}

// UpdateTable replaces the rows with candidates
func (t *CandidateTable) UpdateTable(candidates []candidate.Candidate) {
	clearRows(t.table)

	for i, c := range candidates {
		color := style.ColorWhite

		if c.Rationale == candidate.RationalePreviousSuccess {
			color = style.ColorMediumGreen
		}

		setRow(
			t.table,
			firstDataRow+i,
			[]string{strconv.Itoa(i + 1), c.Host, string(c.Rationale)},
			color,
		)
	}
}

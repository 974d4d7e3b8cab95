package checker

import (
	"fmt"
	"strings"
)

// Stats tallies the checker's lifetime activity, printed at teardown
// when verbose mode is enabled.
type Stats struct {
	OriginalsAdded     int
	LearnedChecked     int
	DeletionsProcessed int
	ClausesCollected   int
	Collections        int
	ClausesRemaining   int
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

// String renders the statistics block in the "c "-prefixed, percentage-
// annotated shape of the reference checker's own teardown report.
func (s Stats) String() string {
	total := s.OriginalsAdded + s.LearnedChecked
	var b strings.Builder
	fmt.Fprintf(&b, "c originals added:      %10d\n", s.OriginalsAdded)
	fmt.Fprintf(&b, "c learned checked:      %10d %6.2f%%\n", s.LearnedChecked, percent(s.LearnedChecked, total))
	fmt.Fprintf(&b, "c deletions processed:  %10d %6.2f%%\n", s.DeletionsProcessed, percent(s.DeletionsProcessed, total))
	fmt.Fprintf(&b, "c clauses collected:    %10d %6.2f%%\n", s.ClausesCollected, percent(s.ClausesCollected, total))
	fmt.Fprintf(&b, "c garbage collections:  %10d\n", s.Collections)
	fmt.Fprintf(&b, "c clauses remaining:    %10d\n", s.ClausesRemaining)
	return b.String()
}

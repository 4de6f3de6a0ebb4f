package schedule

// Candidate one raw entry competing for a time block. Employee is ""
// when the identifier did not resolve; such entries still make the
// block expected.
type Candidate struct {
	Employee string
	Markers  []string
}

// Priority marker preference for one block. Primary wins over
// Secondary; AnyToken blocks (consultant-type slots) accept any entry
// as both presence and last-resort assignee.
type Priority struct {
	Primary   string
	Secondary []string
	AnyToken  bool
}

// Selection outcome of the per-block tie-break.
type Selection struct {
	Employee string // "" when no resolved candidate won
	Present  bool   // at least one entry implied the block exists
}

// Select applies the assignment tie-break: among candidates bearing the
// block's markers, prefer a resolved entry with the primary marker,
// then a resolved entry with any secondary marker, then the first
// resolved entry. Presence is independent of resolution: an unresolved
// entry still registers the block as expected.
func Select(candidates []Candidate, p Priority) Selection {
	var relevant []Candidate
	if p.AnyToken {
		relevant = candidates
	} else {
		for _, c := range candidates {
			if hasMarker(c, p.Primary) || hasAnyMarker(c, p.Secondary) {
				relevant = append(relevant, c)
			}
		}
	}

	sel := Selection{Present: len(relevant) > 0}
	if !sel.Present {
		return sel
	}

	for _, c := range relevant {
		if c.Employee != "" && hasMarker(c, p.Primary) {
			sel.Employee = c.Employee
			return sel
		}
	}
	for _, c := range relevant {
		if c.Employee != "" && hasAnyMarker(c, p.Secondary) {
			sel.Employee = c.Employee
			return sel
		}
	}
	for _, c := range relevant {
		if c.Employee != "" {
			sel.Employee = c.Employee
			return sel
		}
	}
	return sel
}

func hasMarker(c Candidate, marker string) bool {
	if marker == "" {
		return false
	}
	for _, m := range c.Markers {
		if m == marker {
			return true
		}
	}
	return false
}

func hasAnyMarker(c Candidate, markers []string) bool {
	for _, m := range markers {
		if hasMarker(c, m) {
			return true
		}
	}
	return false
}

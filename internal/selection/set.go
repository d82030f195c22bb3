package selection

// Set is an ordered set of report dates. Toggle returns a new Set; the
// receiver is never modified.
type Set struct {
	dates []string
}

// Toggle adds date when absent and removes it when present. Added dates go
// to the end.
func (s Set) Toggle(date string) Set {
	next := make([]string, 0, len(s.dates)+1)
	removed := false
	for _, d := range s.dates {
		if d == date {
			removed = true
			continue
		}
		next = append(next, d)
	}
	if !removed {
		next = append(next, date)
	}
	return Set{dates: next}
}

func (s Set) Contains(date string) bool {
	for _, d := range s.dates {
		if d == date {
			return true
		}
	}
	return false
}

func (s Set) Len() int {
	return len(s.dates)
}

// Dates returns the members in the order they were added.
func (s Set) Dates() []string {
	return append([]string(nil), s.dates...)
}

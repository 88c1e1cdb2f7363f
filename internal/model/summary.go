package model

import "time"

//Summary accumulates the outcome of one mirroring run.
type Summary struct {
	Dirs         int
	Placeholders int
	Reused       int
	Skipped      int
	Bytes        int64 // placeholder bytes written
	Took         time.Duration
}

func (s *Summary) Add(e Entry, placeholderSize int64) {
	switch e.Action {
	case ActionReused:
		s.Reused++
		return
	case ActionSkipped:
		s.Skipped++
		return
	}
	switch e.Kind {
	case KindDir:
		s.Dirs++
	case KindPlaceholder:
		s.Placeholders++
		if e.Action == ActionCreated {
			s.Bytes += placeholderSize
		}
	}
}

//Total is the count of entries that were written (or planned).
func (s Summary) Total() int {
	return s.Dirs + s.Placeholders
}

package domain

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start Date
	End   Date
}

// Overlaps reports whether two inclusive ranges share at least one day:
// r.End >= o.Start && r.Start <= o.End.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.End.Before(o.Start) && !r.Start.After(o.End)
}

func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

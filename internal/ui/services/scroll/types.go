package scroll

// Alignment says where a scrolled-to row should end up
type Alignment int

const (
	// AlignTop scrolls as little as possible: a row above the viewport ends up
	// on the first line, a row below it on the last line. Visible rows don't move.
	AlignTop Alignment = iota
	// AlignCenter puts the row in the middle of the viewport when possible
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	default:
		return "top"
	}
}

// Range is a half-open interval of row indices [Start, End)
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether index falls inside the range
func (r Range) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// Event types
type ScrollRequestedEvent struct {
	Index     int
	Alignment Alignment
}

type ViewportChangedEvent struct {
	Offset int
	Height int
}

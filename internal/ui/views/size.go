package views

import "fmt"

// Size is the list's size variant
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// Padding returns the horizontal padding of rows and the query input
func (s Size) Padding() int {
	switch s {
	case SizeSmall:
		return 0
	case SizeLarge:
		return 2
	default:
		return 1
	}
}

// ParseSize parses "small", "medium" or "large". Empty means medium.
func ParseSize(s string) (Size, error) {
	switch s {
	case "small":
		return SizeSmall, nil
	case "", "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	}
	return SizeMedium, fmt.Errorf("unknown size %q", s)
}

package boundary

import "fmt"

// Category is the final classification of a cell against a boundary.
type Category uint8

const (
	// Unknown marks a cell that has not been classified yet.
	Unknown Category = iota
	// Inside means every corner of the cell is inside the boundary.
	Inside
	// Edge means the cell straddles the boundary and is kept as a cut cell.
	Edge
	// Outside means the cell is excluded.
	Outside
)

var categoryNames = [...]string{
	Unknown: "unknown",
	Inside:  "inside",
	Edge:    "boundary",
	Outside: "outside",
}

// String returns the lowercase name used in logs and JSON output.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}

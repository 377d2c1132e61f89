// ABOUTME: Cell-unit geometry primitives: Point, Size, Rect
// ABOUTME: Rect translation and intersection used by position resolution

package overlay

import "fmt"

// Point is a column/row offset in terminal cells.
type Point struct {
	Col int
	Row int
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{Col: p.Col + o.Col, Row: p.Row + o.Row}
}

// Size is a width/height extent in terminal cells.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether the size covers no cells.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle in terminal cells.
// Col/Row is the origin of the top-left cell.
type Rect struct {
	Col    int
	Row    int
	Width  int
	Height int
}

// NewRect builds a Rect from origin and extent.
func NewRect(col, row, width, height int) Rect {
	return Rect{Col: col, Row: row, Width: width, Height: height}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{Col: r.Col, Row: r.Row}
}

// Size returns the extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Translate returns r shifted by p.
func (r Rect) Translate(p Point) Rect {
	r.Col += p.Col
	r.Row += p.Row
	return r
}

// Intersect returns the overlap of r and o. The result is empty when the
// rectangles do not overlap; its origin is unspecified in that case.
func (r Rect) Intersect(o Rect) Rect {
	col := max(r.Col, o.Col)
	row := max(r.Row, o.Row)
	right := min(r.Col+r.Width, o.Col+o.Width)
	bottom := min(r.Row+r.Height, o.Row+o.Height)
	return Rect{Col: col, Row: row, Width: right - col, Height: bottom - row}
}

// String formats the rectangle as "(col,row WxH)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Col, r.Row, r.Width, r.Height)
}

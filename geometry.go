package vtcore

// Point is a zero-based grid coordinate. Ordering compares Y first, then X,
// matching the row-major traversal the grid and renderer both rely on.
type Point struct {
	X, Y int
}

// Before reports whether p sorts strictly before other in row-major order.
func (p Point) Before(other Point) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Add returns the componentwise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the componentwise difference of p and other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

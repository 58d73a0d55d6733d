package collision

// BoundingBox represents a rectangular collision boundary in screen space
type BoundingBox struct {
	X      float64 // Left edge
	Y      float64 // Top edge
	Width  float64 // Total width
	Height float64 // Total height
}

// NewBoundingBox creates a new bounding box with its top-left corner at x, y
func NewBoundingBox(x, y, width, height float64) BoundingBox {
	return BoundingBox{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// GetBounds returns the min/max coordinates of the bounding box
func (bb BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	return bb.X, bb.Y, bb.X + bb.Width, bb.Y + bb.Height
}

// Intersects checks if this bounding box intersects with another.
// Boxes that only share an edge or a corner intersect.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	minX1, minY1, maxX1, maxY1 := bb.GetBounds()
	minX2, minY2, maxX2, maxY2 := other.GetBounds()

	return !(maxX1 < minX2 || maxX2 < minX1 || maxY1 < minY2 || maxY2 < minY1)
}

// Contains checks if a point is inside the bounding box
func (bb BoundingBox) Contains(point Point) bool {
	minX, minY, maxX, maxY := bb.GetBounds()
	return point.X >= minX && point.X <= maxX && point.Y >= minY && point.Y <= maxY
}

// Point represents a 2D coordinate
type Point struct {
	X, Y float64
}

package fields

import "fmt"

// Geometry places a field on a document page using normalized coordinates.
// Position and size are fractions of the page dimensions in [0, 1]; the
// page number is 1-based.
type Geometry struct {
	Page   int     `json:"page"`
	X      float64 `json:"x_position"`
	Y      float64 `json:"y_position"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Validate checks that the geometry keeps the field inside the page bounds.
func (g Geometry) Validate() error {
	if g.Page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", g.Page)
	}
	if g.X < 0 || g.Y < 0 {
		return fmt.Errorf("position must be non-negative, got (%g, %g)", g.X, g.Y)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("size must be positive, got %gx%g", g.Width, g.Height)
	}
	if g.X+g.Width > 1 {
		return fmt.Errorf("field extends past right page edge: x=%g width=%g", g.X, g.Width)
	}
	if g.Y+g.Height > 1 {
		return fmt.Errorf("field extends past bottom page edge: y=%g height=%g", g.Y, g.Height)
	}
	return nil
}

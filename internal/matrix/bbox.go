package matrix

// PDFBBox represents a rectangle in page-point space. Y is measured from the
// top of the page once the rasterizer has flipped the PDF origin. Degenerate
// boxes (zero width or height) are tolerated but never produced by the
// rasterizer.
type PDFBBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the box in page points.
func (b PDFBBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box in page points.
func (b PDFBBox) Height() float64 {
	return b.Y1 - b.Y0
}

// CharBBox represents a rectangle in grid-cell units.
type CharBBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether the cell (x, y) lies inside the box. The upper
// bounds are exclusive.
func (b CharBBox) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Area returns the number of cells covered by the box.
func (b CharBBox) Area() int {
	return b.Width * b.Height
}

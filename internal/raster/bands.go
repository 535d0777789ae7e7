package raster

// Band is the half-open row range [Y0, Y1) owned by one worker.
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Bands splits rows [0, height) into n contiguous bands of height/n rows.
// The last band also takes the height%n leftover rows, so the bands are
// pairwise disjoint and cover every row. n is clamped to [1, height], which
// keeps every band non-empty.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}

	step := height / n
	bands := make([]Band, n)
	for i := range bands {
		bands[i] = Band{Y0: i * step, Y1: (i + 1) * step}
	}
	bands[n-1].Y1 = height
	return bands
}

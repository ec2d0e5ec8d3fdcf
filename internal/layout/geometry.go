// Package layout computes a paginated block sequence from resume data and a
// template definition. Layout is a pure function of its arguments: identical
// inputs produce byte-identical output, which is the parity contract the
// exporter relies on.
package layout

// PageGeometry fixes the physical page size and margins in points
// (1pt = 1/72in).
type PageGeometry struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MarginTop    float64 `json:"marginTop"`
	MarginRight  float64 `json:"marginRight"`
	MarginBottom float64 `json:"marginBottom"`
	MarginLeft   float64 `json:"marginLeft"`
}

// Letter is US Letter (8.5in x 11in) with half-inch margins, the default
// page geometry for both preview and export.
func Letter() PageGeometry {
	return PageGeometry{
		Width:        612,
		Height:       792,
		MarginTop:    36,
		MarginRight:  36,
		MarginBottom: 36,
		MarginLeft:   36,
	}
}

// ContentWidth is the horizontal space available to columns.
func (g PageGeometry) ContentWidth() float64 {
	return g.Width - g.MarginLeft - g.MarginRight
}

// ContentHeight is the vertical space available to one page of content.
func (g PageGeometry) ContentHeight() float64 {
	return g.Height - g.MarginTop - g.MarginBottom
}

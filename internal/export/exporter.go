// Package export turns a laid-out block sequence into a downloadable PDF.
// It re-renders through the same renderer the preview uses, captures every
// page headlessly as a raster, and assembles one PDF page per capture. An
// export either produces the whole document or fails with a single terminal
// error; partial artifacts are never returned.
package export

import (
	"bytes"
	"context"
	"fmt"

	gofpdf "github.com/lvillar/gofpdf"

	"resume-studio/internal/layout"
	"resume-studio/internal/model"
	"resume-studio/internal/render"
	"resume-studio/internal/template"
	"resume-studio/pkg/logging"
)

// PageCapturer renders HTML in a headless surface and screenshots each page
// element as PNG at the given page size in points.
type PageCapturer interface {
	CapturePages(ctx context.Context, html string, pages int, widthPt, heightPt float64) ([][]byte, error)
}

type Exporter struct {
	capturer PageCapturer
	log      *logging.Logger
}

func New(capturer PageCapturer, log *logging.Logger) *Exporter {
	return &Exporter{capturer: capturer, log: log}
}

// Export renders the block sequence headlessly, captures one raster per
// page index in ascending order, and assembles the PDF. The returned name
// is the suggested download filename derived from the resume title.
func (e *Exporter) Export(ctx context.Context, blocks []layout.Block, def template.Definition, theme model.ResumeTheme, page layout.PageGeometry, title string) ([]byte, string, error) {
	tree := render.Render(blocks, def, theme, page)

	var htmlBuf bytes.Buffer
	if err := render.WriteHTML(&htmlBuf, tree, render.HostOptions{Title: title, Interactive: false}); err != nil {
		return nil, "", fmt.Errorf("export: rendering capture document: %w", err)
	}

	pages := layout.PageCount(blocks)
	images, err := e.capturer.CapturePages(ctx, htmlBuf.String(), pages, page.Width, page.Height)
	if err != nil {
		return nil, "", fmt.Errorf("export: page capture failed: %w", err)
	}
	if len(images) != pages {
		return nil, "", fmt.Errorf("export: captured %d pages, expected %d", len(images), pages)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for i, img := range images {
		name := fmt.Sprintf("page-%d", i)
		pdf.AddPage()
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
		pdf.ImageOptions(name, 0, 0, page.Width, page.Height, false, opts, 0, "")
	}
	if pdf.Err() {
		return nil, "", fmt.Errorf("export: assembling pdf: %w", pdf.Error())
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, "", fmt.Errorf("export: writing pdf: %w", err)
	}

	e.log.Info("export complete", "pages", pages, "bytes", out.Len())
	return out.Bytes(), Filename(title), nil
}

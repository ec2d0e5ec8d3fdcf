package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-studio/internal/layout"
	"resume-studio/internal/model"
	"resume-studio/internal/template"
	"resume-studio/pkg/logging"
)

type fakeCapturer struct {
	images    [][]byte
	err       error
	gotHTML   string
	gotPages  int
	gotWidth  float64
	gotHeight float64
}

func (f *fakeCapturer) CapturePages(_ context.Context, html string, pages int, widthPt, heightPt float64) ([][]byte, error) {
	f.gotHTML = html
	f.gotPages = pages
	f.gotWidth = widthPt
	f.gotHeight = heightPt
	return f.images, f.err
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return b.Bytes()
}

func twoPageBlocks() []layout.Block {
	return []layout.Block{
		{Page: 0, Section: template.SectionHeader, Kind: layout.KindHeader,
			Lines: []layout.Line{{Role: layout.RoleName, Text: "Ada Lovelace"}}},
		{Page: 1, Section: template.SectionExperience, Kind: layout.KindEntry, EntryID: "exp-1",
			Lines: []layout.Line{{Role: layout.RoleTitle, Text: "Engineer"}}},
	}
}

func TestExportAssemblesOnePDFPagePerCapture(t *testing.T) {
	img := pngBytes(t)
	capt := &fakeCapturer{images: [][]byte{img, img}}
	e := New(capt, logging.NewNop())

	page := layout.Letter()
	out, name, err := e.Export(context.Background(), twoPageBlocks(), template.Resolve(template.Modern), model.DefaultTheme(), page, "My Resume")
	require.NoError(t, err)

	assert.Equal(t, "my_resume.pdf", name)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, 2, capt.gotPages)
	assert.Equal(t, page.Width, capt.gotWidth)
	assert.Equal(t, page.Height, capt.gotHeight)
	// the capture document is the non-interactive host
	assert.NotContains(t, capt.gotHTML, "box-shadow")
	assert.Contains(t, capt.gotHTML, "Ada Lovelace")
}

func TestExportAbortsOnCaptureError(t *testing.T) {
	e := New(&fakeCapturer{err: errors.New("browser crashed")}, logging.NewNop())

	out, _, err := e.Export(context.Background(), twoPageBlocks(), template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter(), "r")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "page capture failed")
}

func TestExportRejectsPartialCapture(t *testing.T) {
	e := New(&fakeCapturer{images: [][]byte{pngBytes(t)}}, logging.NewNop())

	out, _, err := e.Export(context.Background(), twoPageBlocks(), template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter(), "r")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "captured 1 pages, expected 2")
}

func TestExportEmptyResumeStillOnePage(t *testing.T) {
	capt := &fakeCapturer{images: [][]byte{pngBytes(t)}}
	e := New(capt, logging.NewNop())

	out, _, err := e.Export(context.Background(), nil, template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter(), "r")
	require.NoError(t, err)
	assert.Equal(t, 1, capt.gotPages)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// captureScale is the raster density of captured pages (2x CSS pixels).
const captureScale = 2.0

type ChromedpCapture struct {
	chromePath string
}

// NewChromedpCapture builds a capturer; chromePath may be empty, in which
// case the CHROME_PATH env var and then chromedp's own lookup apply.
func NewChromedpCapture(chromePath string) *ChromedpCapture {
	return &ChromedpCapture{chromePath: chromePath}
}

// CapturePages loads the rendered HTML in headless Chrome and screenshots
// each page region as PNG. The capture host stacks pages edge to edge, so
// page i occupies the vertical band [i*height, (i+1)*height). Any failure
// aborts the whole capture.
func (c *ChromedpCapture) CapturePages(ctx context.Context, html string, pages int, widthPt, heightPt float64) ([][]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	execPath := c.chromePath
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	// ensure Chrome starts
	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	// write HTML to a temporary directory so file:// resolution works
	tmpDir, err := os.MkdirTemp("", "resume-capture-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	// CSS points to CSS pixels at 96dpi
	pageWpx := widthPt * 96 / 72
	pageHpx := heightPt * 96 / 72

	var shots [][]byte
	htmlURL := "file://" + htmlPath
	err = chromedp.Run(ctx2,
		chromedp.EmulateViewport(int64(pageWpx), int64(pageHpx)),
		chromedp.Navigate(htmlURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			for i := 0; i < pages; i++ {
				shot, err := page.CaptureScreenshot().
					WithFormat(page.CaptureScreenshotFormatPng).
					WithCaptureBeyondViewport(true).
					WithClip(&page.Viewport{
						X:      0,
						Y:      float64(i) * pageHpx,
						Width:  pageWpx,
						Height: pageHpx,
						Scale:  captureScale,
					}).
					Do(ctx)
				if err != nil {
					return err
				}
				shots = append(shots, shot)
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return shots, nil
}

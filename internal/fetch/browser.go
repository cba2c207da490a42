package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minContentLength is the shortest extracted text considered a real
// posting. Anything shorter is likely a JavaScript-rendered shell.
const minContentLength = 500

// NeedsBrowser reports whether the statically extracted text is too
// short to be a complete job posting.
func NeedsBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < minContentLength
}

// RenderWithBrowser loads a page in a headless browser and returns the
// rendered HTML. Requires Chrome or Chromium on the system.
func RenderWithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill the page in.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners if present; ignore failures.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}

// Package fetch retrieves job postings from the web and reduces them to
// plain text suitable for keyword and AI match analysis.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the client to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeAnalyzer/1.0)"

// Page holds the raw result of fetching a URL.
type Page struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error represents a failure while fetching a URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// UseBrowser enables the headless browser fallback for pages that
	// render their content with JavaScript.
	UseBrowser bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Get retrieves the HTML content of a URL.
func Get(ctx context.Context, rawURL string, opts *Options) (*Page, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to read response body", Cause: err}
	}

	page := &Page{
		URL:         rawURL,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return page, &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return page, nil
}

// jobContentSelectors locate the posting body on common job boards,
// tried in order; the first match wins.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractJobText parses job posting HTML and returns the posting body as
// plain text. Navigation, scripts and other chrome are stripped first;
// if no job selector matches, the whole body is used.
func ExtractJobText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range jobContentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// JobDescription fetches a job posting URL and returns its plain text.
// When the statically served page yields too little text and the browser
// fallback is enabled, the page is re-rendered in a headless browser.
func JobDescription(ctx context.Context, rawURL string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	page, err := Get(ctx, rawURL, opts)
	if err != nil {
		return "", err
	}

	text, err := ExtractJobText(page.HTML)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to extract text", Cause: err}
	}

	if opts.UseBrowser && NeedsBrowser(text) {
		html, err := RenderWithBrowser(ctx, rawURL, opts.Timeout)
		if err != nil {
			// Keep whatever the static fetch produced.
			if text != "" {
				return text, nil
			}
			return "", &Error{URL: rawURL, Message: "browser rendering failed", Cause: err}
		}
		if rendered, err := ExtractJobText(html); err == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	if text == "" {
		return "", &Error{URL: rawURL, Message: "no text content found"}
	}

	return text, nil
}

// cleanWhitespace trims each line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

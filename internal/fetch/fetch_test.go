package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Opening</h1></body></html>"))
	}))
	defer server.Close()

	page, err := Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, page.URL)
	assert.Contains(t, page.HTML, "<h1>Opening</h1>")
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, page.ContentType, "text/html")
}

func TestGet_InvalidURL(t *testing.T) {
	_, err := Get(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestGet_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	page, err := Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, page)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestGet_SendsUserAgentAndHeaders(t *testing.T) {
	var gotAgent, gotCustom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotCustom = r.Header.Get("X-Custom")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"X-Custom": "value"}

	_, err := Get(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotAgent)
	assert.Equal(t, "value", gotCustom)
}

func TestExtractJobText_PrefersJobSelector(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Site navigation</nav>
			<div class="job-description">
				<h1>Senior Engineer</h1>
				<p>Build and operate backend services.</p>
			</div>
			<footer>Copyright</footer>
		</body>
	</html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "backend services")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p></body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestExtractJobText_StripsScriptsAndStyle(t *testing.T) {
	html := `
	<html>
		<body>
			<main>
				<script>var tracking = true;</script>
				<style>.hidden { display: none; }</style>
				<p>Role details here.</p>
			</main>
		</body>
	</html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Role details here.")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "display")
}

func TestJobDescription_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><p>We need a Go developer.</p></main></body></html>`))
	}))
	defer server.Close()

	text, err := JobDescription(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "We need a Go developer.", text)
}

func TestJobDescription_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer server.Close()

	_, err := JobDescription(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, NeedsBrowser(""))
	assert.True(t, NeedsBrowser("short shell page"))

	long := make([]byte, minContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, NeedsBrowser(string(long)))
}

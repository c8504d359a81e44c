package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	defaults := chalkboard.DefaultSettings()
	defaults.PreviewSize = 96
	defaults.ExportSize = 128
	defaults.PatchSize = 20

	h, err := NewHandler(Options{Defaults: defaults, Limits: chalkboard.DefaultLimits, MaxSize: 256})
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestDefaults(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/api/defaults")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body defaultsResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, 96, body.Settings.PreviewSize)
	assert.Equal(t, chalkboard.DefaultLimits, body.Limits)
}

func TestPresets(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/api/presets")
	require.NoError(t, err)
	defer res.Body.Close()

	var body []presetEntry
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.NotEmpty(t, body)
	for _, p := range body {
		assert.NotEmpty(t, p.Name)
		assert.Equal(t, 96, p.Settings.PreviewSize)
	}
}

func TestPreviewDefaults(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/api/preview", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/png", res.Header.Get("Content-Type"))

	img, err := png.Decode(res.Body)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())
}

func TestPreviewOverlaysBody(t *testing.T) {
	ts := newTestServer(t)

	body := `{"previewSize": 48, "patchSize": 10, "baseColor": "#336699"}`
	res, err := http.Post(ts.URL+"/api/preview", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	img, err := png.Decode(res.Body)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
}

func TestPreviewRangeError(t *testing.T) {
	ts := newTestServer(t)

	body := `{"previewSize": 40, "patchSize": 50}`
	res, err := http.Post(ts.URL+"/api/preview", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPreviewBadJSON(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/api/preview", "application/json", strings.NewReader(`{"alpha":`))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPreviewBadColor(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/api/preview", "application/json", strings.NewReader(`{"baseColor":"mauve"}`))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestExportPNG(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/api/export/png?size=64", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Disposition"), "chalkboard.png")

	img, err := png.Decode(res.Body)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestExportInvalidSize(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/api/export/png?size=big", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPreviewRejectsBadSize(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{`{"previewSize": 0}`, `{"previewSize": -8}`, `{"previewSize": 100000}`} {
		t.Run(body, func(t *testing.T) {
			res, err := http.Post(ts.URL+"/api/preview", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			defer res.Body.Close()
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.NotEqual(t, "image/png", res.Header.Get("Content-Type"))
		})
	}
}

func TestExportRejectsBadSize(t *testing.T) {
	ts := newTestServer(t)

	for _, size := range []string{"0", "-5", "257"} {
		t.Run(size, func(t *testing.T) {
			res, err := http.Post(ts.URL+"/api/export/png?size="+size, "application/json", nil)
			require.NoError(t, err)
			defer res.Body.Close()
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		})
	}
}

func TestExportAtMaxSize(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/api/export/png?size=256", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	img, err := png.Decode(res.Body)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestIndexServed(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

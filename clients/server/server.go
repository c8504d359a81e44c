// Package server provides the GoChalk web preview and HTTP API.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
	"github.com/xob0t/GoChalk/pkg/generator"
	"github.com/xob0t/GoChalk/pkg/preset"
)

//go:embed web/*
var webContent embed.FS

// DefaultMaxSize caps the side length of any image the server renders.
var DefaultMaxSize = chalkboard.DefaultSettings().ExportSize

// Options configures the preview server.
type Options struct {
	Port        string
	Defaults    chalkboard.Settings
	Limits      chalkboard.Limits
	MaxSize     int // largest accepted side length; 0 means DefaultMaxSize
	OpenBrowser bool
}

// ── Server ──

type srv struct {
	// Generation requests run one at a time.
	mu       sync.Mutex
	defaults chalkboard.Settings
	limits   chalkboard.Limits
	maxSize  int
	log      *log.Entry
}

// NewHandler returns the API and static file handler.
func NewHandler(opts Options) (http.Handler, error) {
	s := &srv{
		defaults: opts.Defaults,
		limits:   opts.Limits,
		maxSize:  opts.MaxSize,
		log:      log.WithField("component", "server"),
	}
	if s.maxSize <= 0 {
		s.maxSize = DefaultMaxSize
	}

	webFS, err := fs.Sub(webContent, "web")
	if err != nil {
		return nil, fmt.Errorf("embed web: %w", err)
	}

	mux := http.NewServeMux()

	// API routes.
	mux.HandleFunc("GET /api/defaults", s.handleDefaults)
	mux.HandleFunc("GET /api/presets", s.handlePresets)
	mux.HandleFunc("POST /api/preview", s.handlePreview)
	mux.HandleFunc("POST /api/export/png", s.handleExportPNG)

	// Static files.
	mux.Handle("/", http.FileServer(http.FS(webFS)))

	return mux, nil
}

// RunServe starts the web preview server and blocks until it fails.
func RunServe(opts Options) error {
	h, err := NewHandler(opts)
	if err != nil {
		return err
	}

	addr := ":" + opts.Port
	url := "http://localhost" + addr
	log.Infof("GoChalk preview → %s", url)

	if opts.OpenBrowser {
		go openBrowser(url)
	}

	return http.ListenAndServe(addr, h)
}

// ── Settings ──

type defaultsResponse struct {
	Settings chalkboard.Settings `json:"settings"`
	Limits   chalkboard.Limits   `json:"limits"`
}

func (s *srv) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, defaultsResponse{Settings: s.defaults, Limits: s.limits})
}

type presetEntry struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Settings    chalkboard.Settings `json:"settings"`
}

func (s *srv) handlePresets(w http.ResponseWriter, r *http.Request) {
	names := preset.Names()
	out := make([]presetEntry, 0, len(names))
	for _, name := range names {
		p, _ := preset.Lookup(name)
		settings := preset.Merge(s.defaults, p.Settings)
		out = append(out, presetEntry{Name: name, Description: p.Meta.Description, Settings: settings})
	}
	writeJSON(w, out)
}

// decodeSettings overlays the request body onto the server defaults.
// An empty body yields the defaults.
func (s *srv) decodeSettings(r *http.Request) (chalkboard.Settings, error) {
	settings := s.defaults
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return settings, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

// checkSize rejects side lengths the server will not render.
func (s *srv) checkSize(size int) error {
	if size <= 0 || size > s.maxSize {
		return fmt.Errorf("size %d must be in [1, %d]", size, s.maxSize)
	}
	return nil
}

// ── Render (core) ──

func (s *srv) render(settings chalkboard.Settings, size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	cfg := generator.Config{
		Settings:  settings,
		Width:     size,
		Height:    size,
		Generator: chalkboard.New(chalkboard.WithBlurRadius(settings.BlurRadius), chalkboard.WithLogger(s.log)),
	}

	var buf bytes.Buffer
	if err := generator.GenerateToWriter(&buf, ".png", cfg); err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{
		"size":  size,
		"bytes": buf.Len(),
		"took":  time.Since(start).Round(time.Millisecond),
	}).Info("rendered")
	return buf.Bytes(), nil
}

func (s *srv) handlePreview(w http.ResponseWriter, r *http.Request) {
	settings, err := s.decodeSettings(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.checkSize(settings.PreviewSize); err != nil {
		http.Error(w, "previewSize: "+err.Error(), http.StatusBadRequest)
		return
	}

	data, err := s.render(settings, settings.PreviewSize)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

// ── Export ──

func (s *srv) handleExportPNG(w http.ResponseWriter, r *http.Request) {
	settings, err := s.decodeSettings(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	size := settings.ExportSize
	if q := r.URL.Query().Get("size"); q != "" {
		if size, err = strconv.Atoi(q); err != nil {
			http.Error(w, fmt.Sprintf("invalid size %q", q), http.StatusBadRequest)
			return
		}
	}
	if err := s.checkSize(size); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := s.render(settings, size)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="chalkboard.png"`)
	w.Write(data)
}

// fail maps parameter errors to 400 and everything else to 500.
func (s *srv) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, chalkboard.ErrRange) || errors.Is(err, chalkboard.ErrColor) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.log.WithError(err).Error("render failed")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// ── Helpers ──

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func openBrowser(url string) {
	time.Sleep(300 * time.Millisecond)
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Debugf("open browser: %v", err)
	}
}

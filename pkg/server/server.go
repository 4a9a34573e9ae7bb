// Package server exposes PDF redaction over HTTP.
//
// Clients post the URL of a PDF and the URL of its Document AI JSON together with the region
// keys to hide. The server downloads both, redacts the PDF and writes it to the output
// directory as ANONYMISED_<name>.pdf.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gardar/docredact/pkg/gdocai"
	"github.com/gardar/docredact/pkg/pdfredact"
	"github.com/gardar/docredact/pkg/regions"
)

const maxRequestBytes = 1 << 20

var urlPattern = regexp.MustCompile(`^(https?://)?([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}(/[^\s]*)?$`)

// RedactFunc performs one redaction; pdfredact.Redact in production
type RedactFunc func(pdf, payload []byte, targets []string, config pdfredact.RedactConfig) (*pdfredact.Result, error)

// Server handles redaction requests
type Server struct {
	cfg     Config
	fetcher Fetcher
	redact  RedactFunc
	logger  *slog.Logger
}

// New builds a server. A nil fetcher uses an HTTPFetcher from cfg, a nil logger uses slog.Default().
func New(cfg Config, fetcher Fetcher, logger *slog.Logger) *Server {
	if fetcher == nil {
		fetcher = NewHTTPFetcher(cfg.FetchTimeout, cfg.MaxFetchBytes)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:     cfg,
		fetcher: fetcher,
		redact:  pdfredact.Redact,
		logger:  logger,
	}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /process-anonymisation", s.handleAnonymise)
	mux.HandleFunc("POST /keys", s.handleKeys)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

type anonymiseRequest struct {
	PDFURL      string   `json:"pdfURL"`
	VerticesURL string   `json:"verticesURL"`
	Color       string   `json:"color"`
	Targets     []string `json:"targets"`
}

type anonymiseData struct {
	Status   string `json:"status"`
	FileName string `json:"fileName"`
	Warning  string `json:"warning,omitempty"`
}

type keysRequest struct {
	VerticesURL string `json:"verticesURL"`
}

func (s *Server) handleAnonymise(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	w.Header().Set("X-Request-ID", reqID)
	logger := s.logger.With("req_id", reqID)
	start := time.Now()

	var req anonymiseRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !isURL(req.PDFURL) || !isURL(req.VerticesURL) {
		writeError(w, http.StatusBadRequest, "PDF URL and vertices URL are required.")
		return
	}
	if req.Color == "" {
		req.Color = s.cfg.Redaction.Color
	}
	color, err := pdfredact.ParseColor(req.Color)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info("redact.request", "pdf_url", req.PDFURL, "vertices_url", req.VerticesURL, "targets", len(req.Targets))

	pdfData, err := s.fetcher.Fetch(r.Context(), withScheme(req.PDFURL))
	if err != nil {
		s.fail(w, logger, err)
		return
	}
	payload, err := s.fetcher.Fetch(r.Context(), withScheme(req.VerticesURL))
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	config := s.cfg.redactConfig(color)
	config.Logger = logger
	result, err := s.redact(pdfData, payload, req.Targets, config)
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	fileName := outputFileName(req.PDFURL)
	if err := os.WriteFile(filepath.Join(s.cfg.OutputDir, fileName), result.PDF, 0o644); err != nil {
		s.fail(w, logger, fmt.Errorf("write %s: %w", fileName, err))
		return
	}

	logger.Info("redact.done",
		"file", fileName,
		"marks", len(result.Marks),
		"keys_not_found", len(result.KeysNotFound),
		"elapsed_ms", time.Since(start).Milliseconds())

	writeJSON(w, http.StatusOK, map[string]any{
		"data": anonymiseData{
			Status:   "OK",
			FileName: fileName,
			Warning:  result.Warning(),
		},
	})
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	w.Header().Set("X-Request-ID", reqID)
	logger := s.logger.With("req_id", reqID)

	var req keysRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !isURL(req.VerticesURL) {
		writeError(w, http.StatusBadRequest, "vertices URL is required.")
		return
	}

	payload, err := s.fetcher.Fetch(r.Context(), withScheme(req.VerticesURL))
	if err != nil {
		s.fail(w, logger, err)
		return
	}
	ext, err := regions.ExtractJSON(payload)
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	logger.Info("keys.done", "shape", ext.Shape.String(), "keys", len(ext.Regions))
	writeJSON(w, http.StatusOK, map[string]any{"keys": ext.Keys()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail maps an error onto its status code and logs it
func (s *Server) fail(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := statusFor(err)
	logger.Error("request failed", "status", status, "error", err)
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, gdocai.ErrUnsupportedPayload):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func isURL(s string) bool {
	return urlPattern.MatchString(s)
}

// withScheme defaults scheme-less URLs to https
func withScheme(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "https://" + s
}

// outputFileName derives ANONYMISED_<name>.pdf from the last path segment of the PDF URL
func outputFileName(pdfURL string) string {
	p := pdfURL
	if u, err := url.Parse(withScheme(pdfURL)); err == nil {
		p = u.Path
	}
	base := path.Base(p)
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "document"
	}
	return "ANONYMISED_" + base + ".pdf"
}

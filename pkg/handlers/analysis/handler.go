package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bharathk2498/migrationgpt/pkg/adapters"
	"github.com/bharathk2498/migrationgpt/pkg/models/api"
	"github.com/bharathk2498/migrationgpt/pkg/services/assessment"
	"github.com/bharathk2498/migrationgpt/pkg/services/proposal"
	"github.com/bharathk2498/migrationgpt/pkg/services/report"
	analysisstore "github.com/bharathk2498/migrationgpt/pkg/store/duckdb/analysis"
	"github.com/bharathk2498/migrationgpt/pkg/store/upload"
)

const (
	ServiceName    = "MigrationGPT"
	ServiceVersion = "2.0.0"

	maxUploadBytes = 10 << 20
	maxListLimit   = 200
)

var features = []string{"GitHub Integration", "AI Analysis", "Enterprise UI"}

var errNoFile = errors.New("No file provided")

type Handler struct {
	assessor  assessment.Service
	store     analysisstore.Store
	archive   upload.Archive
	proposals *proposal.Generator
	mode      string
	now       func() time.Time
	newID     func() string
}

type Option func(*Handler)

func WithArchive(a upload.Archive) Option {
	return func(h *Handler) { h.archive = a }
}

func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(h *Handler) { h.newID = newID }
}

// WithMode sets the AI mode reported by the service banner.
func WithMode(mode string) Option {
	return func(h *Handler) { h.mode = mode }
}

func NewHandler(svc assessment.Service, store analysisstore.Store, opts ...Option) *Handler {
	h := &Handler{
		assessor: svc,
		store:    store,
		archive:  upload.Discard{},
		mode:     "demo",
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.proposals = proposal.NewGenerator(h.now)
	return h
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, api.ServiceInfo{
		Service:  ServiceName,
		Version:  ServiceVersion,
		Status:   "operational",
		Mode:     h.mode,
		Features: features,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, api.Health{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
	})
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, err := decodeAnalyzeRequest(w, r)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		logger.Warn().Err(err).Msg("rejected analyze request")
		http.Error(w, err.Error(), status)
		return
	}

	id := h.newID()
	location, err := h.archive.Put(ctx, id, req.FileName, []byte(req.FileContent))
	if err != nil {
		logger.Error().Err(err).Str("analysis_id", id).Msg("failed to archive upload")
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	if location != "" {
		logger.Debug().Str("analysis_id", id).Str("location", location).Msg("upload archived")
	}

	started := h.now()
	result, err := h.assessor.Run(ctx, assessment.Request{
		ID:          id,
		ProjectName: req.ProjectName,
		TargetCloud: req.TargetCloud,
		FileName:    req.FileName,
		Content:     []byte(req.FileContent),
	})
	if err != nil {
		logger.Error().Err(err).Str("analysis_id", id).Msg("analysis failed")
		h.recordFailure(ctx, id, req, h.now().Sub(started))
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	analysis := adapters.MapAnalysisDomainToApi(result)
	if err := h.save(ctx, analysis); err != nil {
		logger.Error().Err(err).Str("analysis_id", id).Msg("failed to save analysis")
		http.Error(w, "failed to save analysis", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, adapters.MapAnalysisApiToResponse(analysis))
}

// ListAnalyses returns the most recent analyses; ?limit bounds the count.
func (h *Handler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxListLimit)
	}

	records, err := h.store.List(ctx, limit)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list analyses")
		http.Error(w, "failed to list analyses", http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, adapters.MapStoreRecordsToApiList(records))
}

func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, analysis)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	renderer, err := report.NewRenderer(format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	analysis, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	if err := renderer.Render(w, analysis); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("analysis_id", analysis.AnalysisID).
			Str("format", string(format)).
			Msg("failed to render report")
	}
}

func (h *Handler) GetProposal(w http.ResponseWriter, r *http.Request) {
	analysis, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, h.proposals.Generate(r.Context(), analysis))
}

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.store.Stats(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to load analysis stats")
		http.Error(w, "failed to load metrics", http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, adapters.MapStoreStatsToApiMetrics(*stats))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (api.Analysis, bool) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	record, err := h.store.Get(ctx, id)
	if errors.Is(err, analysisstore.ErrNotFound) {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return api.Analysis{}, false
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("analysis_id", id).Msg("failed to load analysis")
		http.Error(w, "failed to load analysis", http.StatusInternalServerError)
		return api.Analysis{}, false
	}

	analysis, err := adapters.MapStoreRecordToApiAnalysis(*record)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("analysis_id", id).Msg("corrupt analysis record")
		http.Error(w, "failed to load analysis", http.StatusInternalServerError)
		return api.Analysis{}, false
	}
	return analysis, true
}

func (h *Handler) save(ctx context.Context, analysis api.Analysis) error {
	record, err := adapters.MapAnalysisApiToStoreRecord(analysis)
	if err != nil {
		return err
	}
	return h.store.Save(ctx, record)
}

// recordFailure keeps failed runs in the store so they count against the
// success rate.
func (h *Handler) recordFailure(ctx context.Context, id string, req api.AnalyzeRequest, elapsed time.Duration) {
	failed := api.Analysis{
		AnalysisID:      id,
		ProjectName:     req.ProjectName,
		TargetCloud:     req.TargetCloud,
		FileName:        req.FileName,
		Status:          "failed",
		CreatedAt:       h.now().UTC(),
		DurationSeconds: elapsed.Seconds(),
	}
	if err := h.save(context.WithoutCancel(ctx), failed); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("analysis_id", id).Msg("failed to record failed analysis")
	}
}

func decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (api.AnalyzeRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var req api.AnalyzeRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return req, fmt.Errorf("invalid form: %w", err)
		}
		req.ProjectName = r.FormValue("project_name")
		req.TargetCloud = r.FormValue("target_cloud")
		req.GitHubURL = r.FormValue("github_url")

		file, header, err := r.FormFile("file")
		if errors.Is(err, http.ErrMissingFile) {
			return req, errNoFile
		}
		if err != nil {
			return req, fmt.Errorf("invalid file: %w", err)
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			return req, fmt.Errorf("failed to read file: %w", err)
		}
		req.FileName = header.Filename
		req.FileContent = string(content)
	default:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return req, err
			}
			return req, fmt.Errorf("invalid request body: %w", err)
		}
	}

	if strings.TrimSpace(req.FileContent) == "" {
		return req, errNoFile
	}
	if strings.TrimSpace(req.FileName) == "" {
		req.FileName = assessment.InlineFileName
	}
	if req.ProjectName == "" {
		req.ProjectName = "Untitled Project"
	}
	if req.TargetCloud == "" {
		req.TargetCloud = "aws"
	}
	return req, nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

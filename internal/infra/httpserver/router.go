package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	appadvice "github.com/Shoaibzaak/docscreen/internal/application/advice"
	appdocs "github.com/Shoaibzaak/docscreen/internal/application/documents"
	domai "github.com/Shoaibzaak/docscreen/internal/domain/ai"
	domain "github.com/Shoaibzaak/docscreen/internal/domain/documents"
	"github.com/Shoaibzaak/docscreen/internal/middleware"
)

type Router struct {
	docsSvc   *appdocs.Service
	adviceSvc *appadvice.Service
	archive   domain.ArchiveStore // nil when no evidence bucket is configured
	types     *domain.Registry
	maxUpload int64
}

func NewRouter(docsSvc *appdocs.Service, adviceSvc *appadvice.Service, archive domain.ArchiveStore, types *domain.Registry, maxUpload int64) http.Handler {
	if maxUpload <= 0 {
		maxUpload = domain.MaxUploadBytes
	}
	r := &Router{docsSvc: docsSvc, adviceSvc: adviceSvc, archive: archive, types: types, maxUpload: maxUpload}
	mux := chi.NewRouter()

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/documents/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/documents/types", r.wrap(r.handleTypes))
		rt.Post("/advice", r.wrap(r.handleAdvice))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, domain.ErrTooLarge):
				middleware.IncrementRejected()
				http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			case errors.Is(err, domain.ErrUnsupportedMedia):
				middleware.IncrementRejected()
				http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
			case errors.Is(err, domain.ErrUnknownDocumentType):
				middleware.IncrementRejected()
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, domain.ErrDecode):
				middleware.IncrementRejected()
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, domai.ErrNotConfigured):
				http.Error(w, "ai advice not configured", http.StatusServiceUnavailable)
			case errors.Is(err, domai.ErrQuotaExceeded):
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

// POST /v1/documents/analyze
// multipart/form-data: "document" file field + "documentType" form field.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	// Slack above the limit so an oversized upload is rejected with 413
	// instead of a blunt connection error.
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload+1<<20)
	if err := req.ParseMultipartForm(r.maxUpload); err != nil {
		return domain.ErrTooLarge
	}

	declared := req.FormValue("documentType")
	if err := middleware.ValidateDeclaredType(r.types, declared); err != nil {
		return err
	}

	file, header, err := req.FormFile("document")
	if err != nil {
		return domain.ErrUnsupportedMedia
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	mime, err := middleware.ValidateUpload(data, r.maxUpload)
	if err != nil {
		return err
	}

	result, err := r.docsSvc.Analyze(req.Context(), appdocs.AnalyzeCommand{
		Filename:     middleware.SanitizeFilename(header.Filename),
		DeclaredType: declared,
		Data:         data,
	})
	if err != nil {
		return err
	}

	middleware.IncrementAnalyses()
	if result.RiskLevel == domain.RiskHigh {
		middleware.IncrementHighRisk()
	}
	if _, degraded := result.AIAnalysis[domain.AIKeyNote]; degraded {
		middleware.IncrementDegraded()
	}

	// High-tier uploads go to the evidence bucket for the manual review the
	// recommendations ask for. Archive failure never fails the request.
	if r.archive != nil && result.RiskLevel == domain.RiskHigh {
		key := "evidence/" + string(result.ID) + domain.SupportedMedia[mime]
		url, err := r.archive.Store(req.Context(), key, data, mime)
		if err != nil {
			log.Printf("warn: evidence archive failed for %s: %v", result.ID, err)
		} else {
			result.ArchiveURL = url
		}
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(result)
}

// GET /v1/documents/types
// Static configuration surface: declared types, keyword sets, admission limits.
func (r *Router) handleTypes(w http.ResponseWriter, req *http.Request) error {
	type docType struct {
		Name     string   `json:"name"`
		Keywords []string `json:"keywords"`
	}
	resp := struct {
		DocumentTypes  []docType `json:"document_types"`
		SupportedMedia []string  `json:"supported_media"`
		MaxUploadBytes int64     `json:"max_upload_bytes"`
	}{
		MaxUploadBytes: r.maxUpload,
	}
	for _, name := range r.types.Types() {
		resp.DocumentTypes = append(resp.DocumentTypes, docType{Name: name, Keywords: r.types.Keywords(name)})
	}
	for mime := range domain.SupportedMedia {
		resp.SupportedMedia = append(resp.SupportedMedia, mime)
	}
	sort.Strings(resp.SupportedMedia)

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(resp)
}

// POST /v1/advice
// Body: {"question": "...", "country": "...", "purpose": "..."}
func (r *Router) handleAdvice(w http.ResponseWriter, req *http.Request) error {
	var q appadvice.Query
	if err := json.NewDecoder(req.Body).Decode(&q); err != nil {
		return err
	}

	answer, err := r.adviceSvc.Advise(req.Context(), q)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{"advice": answer})
}

// Package httpapi exposes the search API over chi. Failures at the request
// boundary are surfaced as a structured {success: false, error} body and
// never crash the process.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/filter"
	"github.com/arkline/orgsearch/internal/domain/search/page"
	federationuc "github.com/arkline/orgsearch/internal/usecase/federation"
	healthuc "github.com/arkline/orgsearch/internal/usecase/health"
	nesteduc "github.com/arkline/orgsearch/internal/usecase/nested"
	seeduc "github.com/arkline/orgsearch/internal/usecase/seed"
)

// Server holds the handlers for one serving mode.
type Server struct {
	mode       domain.Mode
	federation *federationuc.Service
	nested     *nesteduc.Service
	seed       *seeduc.Service
	health     *healthuc.Service
	logger     *zap.Logger
}

// NewServer creates an HTTP API server. Services not used by the mode may be nil.
func NewServer(
	mode domain.Mode,
	federation *federationuc.Service,
	nested *nesteduc.Service,
	seed *seeduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		mode:       mode,
		federation: federation,
		nested:     nested,
		seed:       seed,
		health:     health,
		logger:     logger,
	}
}

// Mount attaches the mode's routes onto the router. Both modes expose
// POST /search, each with its own request and response shape.
func (s *Server) Mount(r chi.Router) {
	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	switch s.mode {
	case domain.ModeFederation:
		r.Post("/insertSampleData", s.handleInsertSampleData)
		r.Post("/search", s.handleFederatedSearch)
	case domain.ModeNested:
		r.Post("/insert-sample", s.handleInsertSample)
		r.Post("/search", s.handleNestedSearch)
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "orgsearch is running")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// searchRequest is the federation-mode search body.
type searchRequest struct {
	CompanyFilters filter.Company `json:"companyFilters"`
	ReportFilters  filter.Report  `json:"reportFilters"`
	Page           int            `json:"page"`
	Size           int            `json:"size"`
	SortField      string         `json:"sortField"`
	SortOrder      string         `json:"sortOrder"`
}

func (s *Server) handleFederatedSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeFailure(w, r, err)
		return
	}

	pg, err := page.New(req.Page, req.Size, req.SortField, req.SortOrder)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	result, err := s.federation.Search(r.Context(), req.CompanyFilters, req.ReportFilters, pg)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success:   true,
		Total:     result.Total,
		Companies: result.Companies,
	})
}

func (s *Server) handleInsertSampleData(w http.ResponseWriter, r *http.Request) {
	result := s.seed.SeedFederation(r.Context())

	writeJSON(w, http.StatusOK, insertSampleDataResponse{
		Success:   true,
		Companies: result.Companies,
		Reports:   result.Reports,
	})
}

// nestedSearchRequest is the nested-mode search body.
type nestedSearchRequest struct {
	Parent filter.Person `json:"parent"`
	Child  filter.Child  `json:"child"`
}

func (s *Server) handleNestedSearch(w http.ResponseWriter, r *http.Request) {
	var req nestedSearchRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeFailure(w, r, err)
		return
	}

	people, err := s.nested.Search(r.Context(), req.Parent, req.Child)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	// Raw array, no envelope and no paging metadata: the nested variant
	// keeps a minimal wire contract.
	if people == nil {
		people = []domain.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

func (s *Server) handleInsertSample(w http.ResponseWriter, r *http.Request) {
	p, err := s.seed.SeedNested(r.Context())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// decodeBody parses a JSON request body. An empty body is treated as an
// empty object so bare POSTs compile to match-all filters. Any malformed
// payload (wrong types included) is an invalid filter.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidFilter, err.Error())
}

// writeFailure maps an error to the structured failure envelope. Both
// invalid-filter and backend failures use a server-error status.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	writeJSON(w, http.StatusInternalServerError, failureResponse{Success: false, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

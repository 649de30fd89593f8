package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-tailor/internal/docxedit"
	"github.com/jonathan/cv-tailor/internal/extract"
	"github.com/jonathan/cv-tailor/internal/gaps"
	"github.com/jonathan/cv-tailor/internal/ollama"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/jonathan/cv-tailor/internal/store"
	"github.com/jonathan/cv-tailor/internal/types"
)

const maxUploadBytes = 32 << 20

// matchResponse is the JSON body returned by POST /api/match.
type matchResponse struct {
	RunID        string                 `json:"run_id"`
	Profile      *types.ResumeProfile   `json:"profile"`
	Requirements *types.JobRequirements `json:"requirements"`
	Result       *types.MatchResult     `json:"result"`
}

// handleMatch accepts a multipart form with a "cv" file and either a
// "job_text" field or a "job_url" field, and returns the scored match.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	opts, cleanup, ok := s.pipelineOptions(w, r)
	if !ok {
		return
	}
	defer cleanup()

	outcome, err := pipeline.RunMatch(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, statusForPipelineError(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, matchResponse{
		RunID:        outcome.RunID.String(),
		Profile:      outcome.Profile,
		Requirements: outcome.Requirements,
		Result:       outcome.Result,
	})
}

// handleTailor runs a match and returns the CV with its skills section
// rewritten, as a DOCX download. The uploaded CV must be a .docx.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	opts, cleanup, ok := s.pipelineOptions(w, r)
	if !ok {
		return
	}
	defer cleanup()

	if filepath.Ext(opts.CVPath) != ".docx" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "tailoring requires a .docx CV; PDF layouts cannot be edited")
		return
	}

	outcome, err := pipeline.RunMatch(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, statusForPipelineError(err), err.Error())
		return
	}

	data, err := docxedit.ExportFile(opts.CVPath, outcome.Result.TailoredSkills())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("skills rewrite failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", extract.MimeDOCX)
	w.Header().Set("Content-Disposition", `attachment; filename="cv_tailored.docx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleGaps runs the rejection gap analysis.
func (s *Server) handleGaps(w http.ResponseWriter, r *http.Request) {
	var req types.GapAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	analyzer, model := s.analyzer, s.model
	if req.Model != "" {
		cfg := ollama.DefaultConfig()
		cfg.Model = req.Model
		analyzer = gaps.NewAnalyzer(ollama.NewClient(cfg))
		model = req.Model
	}

	analysis, err := analyzer.Analyze(r.Context(), req.CVText, req.JobDescription, req.RejectionEmail)
	if err != nil {
		var tooShort *gaps.InputTooShortError
		if errors.As(err, &tooShort) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		var conn *ollama.ConnectionError
		if errors.As(err, &conn) {
			s.errorResponse(w, http.StatusBadGateway, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.databaseURL != "" {
		if _, err := store.RecordGapAnalysis(r.Context(), s.databaseURL, model, analysis.Confidence, analysis); err != nil {
			log.Printf("Warning: failed to save gap analysis: %v", err)
		}
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleLetter generates a motivation letter.
func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req types.LetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"letter": s.letters.Generate(&req),
	})
}

// pipelineOptions extracts the CV upload and job source from a multipart
// request. On failure it writes the error response and returns ok=false.
func (s *Server) pipelineOptions(w http.ResponseWriter, r *http.Request) (pipeline.RunOptions, func(), bool) {
	noop := func() {}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return pipeline.RunOptions{}, noop, false
	}

	file, header, err := r.FormFile("cv")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing cv file")
		return pipeline.RunOptions{}, noop, false
	}
	defer func() { _ = file.Close() }()

	if !extract.SupportedExtension(header.Filename) {
		s.errorResponse(w, http.StatusUnsupportedMediaType, "cv must be a .pdf or .docx file")
		return pipeline.RunOptions{}, noop, false
	}

	jobText := r.FormValue("job_text")
	jobURL := r.FormValue("job_url")
	if (jobText == "") == (jobURL == "") {
		s.errorResponse(w, http.StatusBadRequest, "exactly one of job_text or job_url is required")
		return pipeline.RunOptions{}, noop, false
	}

	cvPath, err := extract.CopyToTemp(file, header.Filename)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store uploaded cv")
		return pipeline.RunOptions{}, noop, false
	}
	cleanup := func() { _ = os.Remove(cvPath) }

	opts := pipeline.RunOptions{
		CVPath:      cvPath,
		JobURL:      jobURL,
		UseBrowser:  s.useBrowser,
		DatabaseURL: s.databaseURL,
	}

	if jobText != "" {
		jobPath, err := writeTempText(jobText)
		if err != nil {
			cleanup()
			s.errorResponse(w, http.StatusInternalServerError, "failed to store job text")
			return pipeline.RunOptions{}, noop, false
		}
		opts.JobPath = jobPath
		inner := cleanup
		cleanup = func() {
			inner()
			_ = os.Remove(jobPath)
		}
	}
	return opts, cleanup, true
}

func statusForPipelineError(err error) int {
	var unsupported *extract.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return http.StatusUnsupportedMediaType
	}
	return http.StatusInternalServerError
}

func writeTempText(text string) (string, error) {
	tmp, err := os.CreateTemp("", "job-posting-*.txt")
	if err != nil {
		return "", err
	}
	defer func() { _ = tmp.Close() }()
	if _, err := tmp.WriteString(text); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/ollama"
)

const gapsModelResponse = `{
  "primary_rejection_reason": "Lacks the senior Python experience the role requires",
  "technical_skills_gap": {"critical_missing": [], "important_missing": [], "weak_skills": []},
  "detailed_analysis": "Not enough Python depth.",
  "confidence": "high"
}`

// fakeOllama stands in for a local model endpoint.
func fakeOllama(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"response": gapsModelResponse})
	})
	mux.HandleFunc("GET /api/tags", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testServer(t *testing.T) *Server {
	t.Helper()
	backend := fakeOllama(t)
	return New(Config{Ollama: ollama.Config{BaseURL: backend.URL}})
}

func doJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "up", body["ollama"])
}

func TestHealthzBackendDown(t *testing.T) {
	s := New(Config{Ollama: ollama.Config{BaseURL: "http://127.0.0.1:1"}})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ollama":"down"`)
}

func TestLetterEndpoint(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, "/api/letter", map[string]any{
		"candidate_name":  "Jane Doe",
		"candidate_email": "jane@example.com",
		"job_title":       "Backend Engineer",
		"company":         "Initech",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["letter"], "Dear Initech Team,")
	assert.Contains(t, body["letter"], "Jane Doe")
}

func TestLetterEndpointValidation(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, "/api/letter", map[string]any{
		"candidate_name":  "Jane Doe",
		"candidate_email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGapsEndpoint(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, "/api/gaps", map[string]any{
		"cv_text":         strings.Repeat("Java developer with SQL experience. ", 3),
		"job_description": strings.Repeat("Senior Python engineer position. ", 3),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lacks the senior Python experience")
}

func TestGapsEndpointRejectsShortInput(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, "/api/gaps", map[string]any{
		"cv_text":         "too short",
		"job_description": strings.Repeat("Senior Python engineer position. ", 3),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGapsEndpointInvalidJSON(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/gaps", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGapsEndpointHistoryFailureDoesNotBlockResponse(t *testing.T) {
	// Persistence is best-effort: an unusable database URL must not turn a
	// successful analysis into an error response.
	backend := fakeOllama(t)
	s := New(Config{
		Ollama:      ollama.Config{BaseURL: backend.URL},
		DatabaseURL: "://not-a-url",
	})
	rec := doJSON(t, s, "/api/gaps", map[string]any{
		"cv_text":         strings.Repeat("Java developer with SQL experience. ", 3),
		"job_description": strings.Repeat("Senior Python engineer position. ", 3),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lacks the senior Python experience")
}

func TestGapsEndpointBackendUnreachable(t *testing.T) {
	s := New(Config{Ollama: ollama.Config{BaseURL: "http://127.0.0.1:1"}})
	rec := doJSON(t, s, "/api/gaps", map[string]any{
		"cv_text":         strings.Repeat("Java developer with SQL experience. ", 3),
		"job_description": strings.Repeat("Senior Python engineer position. ", 3),
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func multipartRequest(t *testing.T, path string, cvName string, cvData []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if cvName != "" {
		fw, err := mw.CreateFormFile("cv", cvName)
		require.NoError(t, err)
		_, err = fw.Write(cvData)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestMatchEndpointMissingCV(t *testing.T) {
	s := testServer(t)
	req := multipartRequest(t, "/api/match", "", nil, map[string]string{"job_text": "Engineer"})
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing cv file")
}

func TestMatchEndpointUnsupportedExtension(t *testing.T) {
	s := testServer(t)
	req := multipartRequest(t, "/api/match", "resume.txt", []byte("plain text"), map[string]string{"job_text": "Engineer"})
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestMatchEndpointRequiresOneJobSource(t *testing.T) {
	s := testServer(t)

	for _, fields := range []map[string]string{
		{},
		{"job_text": "Engineer", "job_url": "https://example.com/job"},
	} {
		req := multipartRequest(t, "/api/match", "resume.pdf", []byte("%PDF-1.4"), fields)
		rec := httptest.NewRecorder()
		s.router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, fmt.Sprintf("fields: %v", fields))
		assert.Contains(t, rec.Body.String(), "exactly one of job_text or job_url")
	}
}

func TestTailorEndpointRejectsPDF(t *testing.T) {
	s := testServer(t)
	req := multipartRequest(t, "/api/tailor", "resume.pdf", []byte("%PDF-1.4"), map[string]string{"job_text": "Engineer"})
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "requires a .docx")
}

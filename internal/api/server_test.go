package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mtreece/prepguide/internal/config"
	"github.com/mtreece/prepguide/internal/pipeline"
	"github.com/mtreece/prepguide/internal/question"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{
		APIKey:         "secret",
		MaxUploadBytes: 1 << 20,
		WorkerCount:    1,
		MaxQueueSize:   4,
		MinAIQuestions: 100,
		JobTTL:         time.Hour,
		OutputDir:      t.TempDir(),
		OllamaModel:    "llama3.1:latest",
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	supply := question.NewSupply(question.NewCatalog(), nil, cfg.MinAIQuestions, log)
	orch := pipeline.NewOrchestrator(cfg, supply, log)
	orch.Start(context.Background())
	t.Cleanup(orch.Stop)
	return NewServer(orch, nil, log, cfg)
}

func uploadRequest(t *testing.T, filename, contents string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte(contents))
	mw.WriteField("additional_skills", "Docker, Kubernetes")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/guides", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer secret")
	return req
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/guides/abc/status", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/guides/abc/status", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for bad key", rec.Code)
	}
}

func TestGenerate_UnsupportedExtension(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, uploadRequest(t, "role.xlsx", "whatever"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGenerate_FullFlow(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, uploadRequest(t, "role.txt",
		"Job Title: Senior Java Developer\nCompany: Acme\n\nSkills:\n- Java\n- Spring\n"))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", rec.Code, rec.Body.String())
	}
	var accepted struct {
		JobID   string `json:"job_id"`
		PollURL string `json:"poll_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &accepted); err != nil {
		t.Fatalf("decode accept body: %v", err)
	}
	if accepted.JobID == "" {
		t.Fatalf("empty job id")
	}

	var status string
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, accepted.PollURL, nil)
		req.Header.Set("Authorization", "Bearer secret")
		s.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("poll status = %d: %s", rec.Code, rec.Body.String())
		}
		var body struct {
			Status string `json:"status"`
		}
		json.Unmarshal(rec.Body.Bytes(), &body)
		status = body.Status
		if status == string(pipeline.StatusCompleted) || status == string(pipeline.StatusFailed) {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if status != string(pipeline.StatusCompleted) {
		t.Fatalf("final status = %q, want completed", status)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/guides/"+accepted.JobID+"/download", nil)
	req.Header.Set("Authorization", "Bearer secret")
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if rec.Body.Len() == 0 {
		t.Errorf("empty pdf body")
	}
}

func TestDownload_NotReady(t *testing.T) {
	// Zero workers keeps the job queued so download stays unavailable.
	cfg := config.Config{
		APIKey:       "secret",
		WorkerCount:  0,
		MaxQueueSize: 4,
		JobTTL:       time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	supply := question.NewSupply(question.NewCatalog(), nil, 100, log)
	orch := pipeline.NewOrchestrator(cfg, supply, log)
	orch.Start(context.Background())
	t.Cleanup(orch.Stop)
	s := NewServer(orch, nil, log, cfg)

	job := orch.NewJob("role.txt", "", []byte("x"))
	if err := orch.Submit(job); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/guides/"+job.ID+"/download", nil)
	req.Header.Set("Authorization", "Bearer secret")
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("download status = %d, want 409", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/guides/missing/download", nil)
	req.Header.Set("Authorization", "Bearer secret")
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("download status = %d, want 404 for unknown job", rec.Code)
	}
}

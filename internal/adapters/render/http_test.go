package render

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

func TestSubmitPostsProject(t *testing.T) {
	var received submitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/exports" {
			t.Errorf("%s %s, want POST /exports", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"job_id":"job-42"}`))
	}))
	defer srv.Close()

	project := domain.NewProject(domain.SourceVideo{ID: "vid-1", Title: "Cut", Duration: 30})
	client := NewHTTPClient(srv.URL, nil)

	jobID, err := client.Submit(context.Background(), project)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if jobID != "job-42" {
		t.Errorf("job id = %q, want job-42", jobID)
	}
	if received.ProjectID != project.ID || received.Project == nil {
		t.Errorf("submitted payload = %+v", received)
	}
}

func TestSubmitPipelineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	project := domain.NewProject(domain.SourceVideo{ID: "vid-1", Duration: 30})
	client := NewHTTPClient(srv.URL, nil)

	if _, err := client.Submit(context.Background(), project); err == nil {
		t.Fatal("expected error on 503 response")
	}
}

func TestSubmitRejectsEmptyJobID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	project := domain.NewProject(domain.SourceVideo{ID: "vid-1", Duration: 30})
	client := NewHTTPClient(srv.URL, nil)

	if _, err := client.Submit(context.Background(), project); err == nil {
		t.Fatal("expected error when pipeline returns no job id")
	}
}

func TestGetJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exports/job-42" {
			t.Errorf("path = %s, want /exports/job-42", r.URL.Path)
		}
		w.Write([]byte(`{"id":"job-42","status":"running","progress":60}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, nil)
	job, err := client.GetJob(context.Background(), "job-42")
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if job.Status != ports.JobStatusRunning || job.Progress != 60 {
		t.Errorf("job = %+v", job)
	}
}

func TestGetJobNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, nil)
	if _, err := client.GetJob(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown job")
	}
}

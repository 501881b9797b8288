package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
)

func TestJobsReturnsBackendListings(t *testing.T) {
	listings := []dtos.JobResponse{{ID: 1, Title: "Engineer", Requirements: []string{"Go"}}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jobs", r.URL.Path)
		json.NewEncoder(w).Encode(listings)
	}))
	defer srv.Close()

	jobs := New(srv.URL).Jobs(context.Background())
	assert.Equal(t, listings, jobs)
}

func TestJobsFallsBackOnNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	jobs := New(srv.URL).Jobs(context.Background())
	assert.Equal(t, FallbackListings, jobs)
}

func TestJobsFallsBackOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Internal error"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	jobs := New(srv.URL).Jobs(context.Background())
	assert.Equal(t, FallbackListings, jobs)
}

func TestJobsFallsBackOnEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	jobs := New(srv.URL).Jobs(context.Background())
	assert.Equal(t, FallbackListings, jobs)
}

func TestFallbackListingsContent(t *testing.T) {
	assert.Len(t, FallbackListings, 3)
	assert.Equal(t, "Senior AI Data Engineer", FallbackListings[0].Title)
}

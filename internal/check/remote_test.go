package check

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestRemote(t *testing.T, handler http.HandlerFunc) *RemoteService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s, err := NewRemoteService(RemoteConfig{
		Endpoint: srv.URL,
		APIKey:   "test-key",
		Timeout:  2 * time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRemoteServiceCheck(t *testing.T) {
	s := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/checks" {
			t.Errorf("path = %q, want /v1/checks", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req checkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.QuestionID != "q1" || req.AnswerID != "b" {
			t.Errorf("request = %+v", req)
		}

		json.NewEncoder(w).Encode(checkResponse{
			OK:              true,
			IsCorrect:       true,
			CorrectAnswerID: "b",
			Explanation:     "Because it is.",
		})
	})

	res, err := s.CheckAnswer(context.Background(), "q1", "b")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !res.IsCorrect || res.CorrectAnswerID != "b" {
		t.Errorf("result = %+v", res)
	}
	if res.Explanation != "Because it is." {
		t.Errorf("Explanation = %q", res.Explanation)
	}
}

func TestRemoteServiceNotFound(t *testing.T) {
	s := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := s.CheckAnswer(context.Background(), "missing", "a")
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestRemoteServiceRateLimited(t *testing.T) {
	s := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := s.CheckAnswer(context.Background(), "q1", "a")
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
	if rl.RetryAfter != 3*time.Second {
		t.Errorf("RetryAfter = %s, want 3s", rl.RetryAfter)
	}
}

func TestRemoteServiceServerError(t *testing.T) {
	s := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := s.CheckAnswer(context.Background(), "q1", "a")
	var unavailable *ErrUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestRemoteServiceRefusedCheck(t *testing.T) {
	s := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(checkResponse{OK: false, Error: "deck archived"})
	})

	if _, err := s.CheckAnswer(context.Background(), "q1", "a"); err == nil {
		t.Fatal("expected error when grader refuses the check")
	}
}

func TestRemoteServiceUnreachable(t *testing.T) {
	s, err := NewRemoteService(RemoteConfig{
		Endpoint: "http://127.0.0.1:1", // nothing listens here
		Timeout:  500 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.CheckAnswer(context.Background(), "q1", "a")
	var unavailable *ErrUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestNewRemoteServiceRequiresEndpoint(t *testing.T) {
	if _, err := NewRemoteService(RemoteConfig{}); err == nil {
		t.Fatal("expected error for empty endpoint")
	}
}

func TestNewBuildsLocalWithoutEndpoint(t *testing.T) {
	s, err := New(DefaultConfig(), testDeck(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Name() != "local" {
		t.Errorf("Name = %q, want %q", s.Name(), "local")
	}
}

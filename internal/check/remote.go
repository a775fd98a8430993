package check

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RemoteService grades answers through the Quizdeck grading API: a single
// POST per check, JSON in and out. Transport latency and failure are
// expected; both surface as errors that the state machine converts into a
// retryable condition.
type RemoteService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewRemoteService creates a client for the grading endpoint.
func NewRemoteService(cfg RemoteConfig) (*RemoteService, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("grading endpoint is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteService{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.Endpoint,
		apiKey:  cfg.APIKey,
	}, nil
}

type checkRequest struct {
	QuestionID string `json:"question_id"`
	AnswerID   string `json:"answer_id"`
}

type checkResponse struct {
	OK              bool   `json:"ok"`
	IsCorrect       bool   `json:"is_correct"`
	CorrectAnswerID string `json:"correct_answer_id"`
	Explanation     string `json:"explanation,omitempty"`
	Error           string `json:"error,omitempty"`
}

func (s *RemoteService) CheckAnswer(ctx context.Context, questionID, answerID string) (*Result, error) {
	body, err := json.Marshal(checkRequest{QuestionID: questionID, AnswerID: answerID})
	if err != nil {
		return nil, fmt.Errorf("marshal check request: %w", err)
	}

	url := s.baseURL + "/v1/checks"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := mapStatus(resp); err != nil {
		return nil, err
	}

	var out checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode check response: %w", err)
	}
	if !out.OK {
		return nil, fmt.Errorf("grader refused check: %s", out.Error)
	}

	return &Result{
		IsCorrect:       out.IsCorrect,
		CorrectAnswerID: out.CorrectAnswerID,
		Explanation:     out.Explanation,
	}, nil
}

func (s *RemoteService) Name() string {
	return "remote"
}

// mapStatus converts non-200 responses to the error taxonomy.
func mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrUnknownQuestion
	case resp.StatusCode == http.StatusTooManyRequests:
		return &ErrRateLimit{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("HTTP 429"),
		}
	case resp.StatusCode >= 500:
		return &ErrUnavailable{Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	default:
		return fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

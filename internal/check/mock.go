package check

import (
	"context"
	"sync"
)

// MockResponse is a canned grading outcome for the MockService.
type MockResponse struct {
	Result *Result
	Err    error
}

// MockService is a deterministic Service for testing. It returns canned
// responses in FIFO order and records every call.
type MockService struct {
	mu        sync.Mutex
	responses []MockResponse

	// Calls records (questionID, answerID) pairs in order.
	Calls [][2]string
}

// NewMockService creates a MockService with the given canned responses.
func NewMockService(responses ...MockResponse) *MockService {
	return &MockService{responses: responses}
}

// CheckAnswer returns the next canned response, or ErrUnavailable when the
// queue is empty.
func (m *MockService) CheckAnswer(_ context.Context, questionID, answerID string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, [2]string{questionID, answerID})

	if len(m.responses) == 0 {
		return nil, &ErrUnavailable{}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Result, nil
}

func (m *MockService) Name() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockService) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of CheckAnswer calls made.
func (m *MockService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

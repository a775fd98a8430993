package explain

import (
	"context"
	"fmt"
)

// MockExplainer returns canned explanations for testing and offline use.
type MockExplainer struct {
	// Response is returned from every Explain call when set.
	Response string

	// Err, when set, is returned instead.
	Err error

	// Calls records the requests received, in order.
	Calls []Request
}

// NewMockExplainer creates a mock with a generic canned response.
func NewMockExplainer() *MockExplainer {
	return &MockExplainer{}
}

func (m *MockExplainer) Explain(_ context.Context, req Request) (string, error) {
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return fmt.Sprintf("The correct answer is %s.", req.CorrectID), nil
}

func (m *MockExplainer) ModelID() string {
	return "mock"
}

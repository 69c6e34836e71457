package testutil

import "context"

// MockRateClient is a mock implementation of rates.Client for testing.
// It returns a predefined rate instead of calling the external provider.
type MockRateClient struct {
	// Rate is the USD-BRL rate to return
	Rate float64
	// Err is the error to return instead of a rate
	Err error
	// CallCount tracks how many times GetUSDBRL was called
	CallCount int
}

// NewMockRateClient creates a mock rate client with a fixed default rate.
func NewMockRateClient() *MockRateClient {
	return &MockRateClient{Rate: 5.0}
}

// GetUSDBRL returns the configured rate or error.
func (m *MockRateClient) GetUSDBRL(_ context.Context) (float64, error) {
	m.CallCount++
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Rate, nil
}

// WithRate configures the mock to return the given rate.
func (m *MockRateClient) WithRate(rate float64) *MockRateClient {
	m.Rate = rate
	return m
}

// WithError configures the mock to fail with the given error.
func (m *MockRateClient) WithError(err error) *MockRateClient {
	m.Err = err
	return m
}

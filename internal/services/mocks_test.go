package services_test

import (
	"context"
	"io"
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/tradespark/tradespark-api/internal/leadform"
)

// MockForwarder is a mock implementation of leadform.Forwarder
type MockForwarder struct {
	mock.Mock
}

func (m *MockForwarder) Submit(ctx context.Context, record any) leadform.Result {
	args := m.Called(ctx, record)
	return args.Get(0).(leadform.Result)
}

// MockHTTPClient is a mock implementation of httpclient.Client
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	args := m.Called(url, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockHTTPClient) Get(url string) (*http.Response, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

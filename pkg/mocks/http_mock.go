/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package mocks

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
)

type fakeResponse struct {
	status int
	body   string
}

// FakeHTTPClient is an implementation of HTTPClient interface used for
// testing. Canned responses are registered per URL; requests for any other
// URL fail with a connection error, mimicking an unreachable metadata
// service. It stores Get calls into ClientCalls for easy checking of what
// was called.
type FakeHTTPClient struct {
	ClientCalls []string
	Error       bool

	mu        sync.Mutex
	responses map[string]fakeResponse
}

// AddResponse registers a canned response for the given URL.
func (m *FakeHTTPClient) AddResponse(url string, status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.responses == nil {
		m.responses = map[string]fakeResponse{}
	}
	m.responses[url] = fakeResponse{status: status, body: body}
}

// Get returns the canned response for url and records the call
func (m *FakeHTTPClient) Get(_ context.Context, url string, _ map[string]string) (*http.Response, error) {
	m.mu.Lock()
	m.ClientCalls = append(m.ClientCalls, url)
	resp, ok := m.responses[url]
	m.mu.Unlock()

	if m.Error {
		return nil, errors.New("fake http error")
	}
	if !ok {
		return nil, errors.New("connection refused")
	}
	return &http.Response{
		StatusCode: resp.status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(resp.body)),
	}, nil
}

// WasGetCalledWith is a helper method to confirm that the client was called
// with the given url
func (m *FakeHTTPClient) WasGetCalledWith(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.ClientCalls {
		if c == url {
			return true
		}
	}
	return false
}

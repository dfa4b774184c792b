/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// client is an HTTP client implementation that wraps the standard http.Client
// with retry logic and simplified request building. It carries the traffic
// that goes around the object-store SDK: presigned-URL PUT/GET calls and the
// control-plane health probe.
type client struct {
	*http.Client
}

const (
	DefaultTimeout = 30 * time.Second
	DefaultMaxTry  = 2
)

var (
	once     sync.Once
	instance *client
)

// NewHttpClient creates the shared HTTP client instance. The timeout covers
// the whole request; presigned uploads of large archives go through Put with
// a caller-supplied reader, so the transport settings lean toward few, long
// connections.
func NewHttpClient() Interface {
	once.Do(func() {
		instance = &client{
			Client: &http.Client{
				Timeout: DefaultTimeout,
				Transport: &http.Transport{
					TLSHandshakeTimeout:   10 * time.Second,
					MaxIdleConns:          128,
					MaxConnsPerHost:       64,
					IdleConnTimeout:       1 * time.Minute,
					ExpectContinueTimeout: 10 * time.Second,
				},
			},
		}
	})
	return instance
}

// Interface is the surface used by callers; it keeps the singleton mockable.
type Interface interface {
	Get(url string, headers ...string) (*Result, error)
	Post(url string, body interface{}, headers ...string) (*Result, error)
	Put(url string, body interface{}, headers ...string) (*Result, error)
	Delete(url string, headers ...string) (*Result, error)
	Do(req *http.Request) (*Result, error)
}

// Get sends an HTTP GET request to the specified URL with optional headers.
func (c *client) Get(url string, headers ...string) (*Result, error) {
	return c.do(url, http.MethodGet, nil, headers...)
}

// Post sends an HTTP POST request to the specified URL with a body and optional headers.
func (c *client) Post(url string, body interface{}, headers ...string) (*Result, error) {
	return c.do(url, http.MethodPost, body, headers...)
}

// Put sends an HTTP PUT request to the specified URL with a body and optional headers.
func (c *client) Put(url string, body interface{}, headers ...string) (*Result, error) {
	return c.do(url, http.MethodPut, body, headers...)
}

// Delete sends an HTTP DELETE request to the specified URL with optional headers.
func (c *client) Delete(url string, headers ...string) (*Result, error) {
	return c.do(url, http.MethodDelete, nil, headers...)
}

func (c *client) do(url, method string, body interface{}, headers ...string) (*Result, error) {
	req, err := BuildRequest(url, method, body, headers...)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Do executes the HTTP request with retry logic. It attempts the request up
// to DefaultMaxTry times and returns the last error when all attempts fail.
// On success it reads and closes the response body.
func (c *client) Do(req *http.Request) (*Result, error) {
	var rsp *http.Response
	var err error
	for i := 0; i < DefaultMaxTry; i++ {
		if rsp, err = c.Client.Do(req); err == nil {
			break
		} else if i == DefaultMaxTry-1 {
			return nil, err
		}
	}
	if rsp == nil {
		return nil, fmt.Errorf("no result")
	}
	data, err := io.ReadAll(rsp.Body)
	defer rsp.Body.Close()
	if err != nil {
		return nil, err
	}
	return &Result{StatusCode: rsp.StatusCode, Body: data, Header: rsp.Header}, nil
}

// BuildRequest creates an HTTP request with the given URL, method, body, and
// headers. URLs without a scheme default to https; presigned URLs arrive with
// their scheme already set and pass through untouched. Headers come in
// (key, value) pairs; Content-Type defaults to application/json unless a pair
// overrides it.
func BuildRequest(url, method string, body interface{}, headers ...string) (*http.Request, error) {
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}
	reader, err := cvtIOReader(body)
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		request.Header.Set(headers[i], headers[i+1])
	}
	return request, nil
}

func cvtIOReader(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	var reader io.Reader
	switch b := body.(type) {
	case string:
		reader = strings.NewReader(b)
	case io.Reader:
		reader = b
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}
	return reader, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helper used to fetch the spreadsheet
// asset.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrStatus is wrapped by Get when the server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected HTTP status")

// MaxBodyBytes caps the size of a fetched asset.
var MaxBodyBytes int64 = 64 << 20

// Request describes one GET.
type Request struct {
	URL       string
	UserAgent string

	// Token, when set, is sent as "Authorization: Bearer <token>".
	Token string
}

// Get fetches r.URL and returns the response body. Any status outside
// 200-299 is an error wrapping ErrStatus; the body is drained and closed
// before returning. There is no retry: a failed fetch is final for the
// caller.
func Get(ctx context.Context, client *http.Client, r Request) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d from %s", ErrStatus, resp.StatusCode, r.URL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if int64(len(body)) > MaxBodyBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", r.URL, MaxBodyBytes)
	}
	return body, nil
}

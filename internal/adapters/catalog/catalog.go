// Package catalog fetches product records from the external tabular
// store and normalizes them into the canonical Ski shape. Two backends
// are supported, Airtable and Baserow; both hold their credential
// server-side and the rest of the service never sees backend field
// names.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sleiderink/skifinder/internal/domain/model"
)

// Fetcher retrieves the full catalog. Implementations fetch fresh on
// every call; nothing is cached between searches.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Ski, error)
}

// upstreamError is the error body shape both backends produce on
// failure. Anything at least vaguely JSON-shaped is accepted.
type upstreamError struct {
	Error any `json:"error"`
}

// checkStatus turns a non-2xx upstream response into a wrapped
// ErrUpstreamStatus, pulling the error message out of the body when
// one is present.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	var detail upstreamError
	if body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)); err == nil {
		_ = json.Unmarshal(body, &detail)
	}
	if detail.Error != nil {
		return fmt.Errorf("%w: status %d: %v", ErrUpstreamStatus, resp.StatusCode, detail.Error)
	}
	return fmt.Errorf("%w: status %d", ErrUpstreamStatus, resp.StatusCode)
}

const maxErrorBodyBytes = 4096

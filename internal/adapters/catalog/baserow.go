package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sleiderink/skifinder/internal/domain/model"
)

// Baserow fetches rows from a Baserow table. The database token stays
// inside this client and is only ever sent upstream.
type Baserow struct {
	settings
	tableID int
	token   string
}

// NewBaserow creates a Baserow-backed Fetcher. The host is the bare
// hostname, e.g. "baserow.io".
func NewBaserow(host string, tableID int, token string, opts ...Option) (*Baserow, error) {
	if host == "" || tableID <= 0 || token == "" {
		return nil, fmt.Errorf("%w: baserow needs host, table id and token", ErrMissingCredentials)
	}
	return &Baserow{
		settings: newSettings("https://"+host, opts...),
		tableID:  tableID,
		token:    token,
	}, nil
}

// baserowResponse mirrors the Baserow list-rows payload. Rows are flat
// field-mappings because user_field_names is requested.
type baserowResponse struct {
	Count    int              `json:"count"`
	Next     string           `json:"next"`
	Previous string           `json:"previous"`
	Results  []map[string]any `json:"results"`
}

// Fetch retrieves all rows, following next links until the table is
// exhausted.
func (b *Baserow) Fetch(ctx context.Context) ([]model.Ski, error) {
	next := fmt.Sprintf("%s/api/database/rows/table/%d/?user_field_names=true&size=%s",
		b.baseURL, b.tableID, strconv.Itoa(b.pageSize))

	var skis []model.Ski
	for next != "" {
		page, err := b.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}
		for _, row := range page.Results {
			skis = append(skis, normalizeRecord(row))
		}
		next = page.Next
	}
	return skis, nil
}

func (b *Baserow) fetchPage(ctx context.Context, pageURL string) (*baserowResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build baserow request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+b.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("baserow request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var page baserowResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return &page, nil
}

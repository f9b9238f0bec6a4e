package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sleiderink/skifinder/internal/domain/model"
)

// airtableBaseURL is the public Airtable REST endpoint.
const airtableBaseURL = "https://api.airtable.com/v0"

// Airtable fetches records from an Airtable base. The API key stays
// inside this client and is only ever sent upstream.
type Airtable struct {
	settings
	baseID string
	table  string
	apiKey string
}

// NewAirtable creates an Airtable-backed Fetcher.
func NewAirtable(baseID, table, apiKey string, opts ...Option) (*Airtable, error) {
	if baseID == "" || table == "" || apiKey == "" {
		return nil, fmt.Errorf("%w: airtable needs base id, table and api key", ErrMissingCredentials)
	}
	return &Airtable{
		settings: newSettings(airtableBaseURL, opts...),
		baseID:   baseID,
		table:    table,
		apiKey:   apiKey,
	}, nil
}

// airtableResponse mirrors the Airtable list-records payload.
type airtableResponse struct {
	Records []struct {
		ID     string         `json:"id"`
		Fields map[string]any `json:"fields"`
	} `json:"records"`
	Offset string `json:"offset"`
}

// Fetch retrieves all records, following offset pagination until the
// base is exhausted.
func (a *Airtable) Fetch(ctx context.Context) ([]model.Ski, error) {
	var skis []model.Ski
	offset := ""
	for {
		page, err := a.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}
		for _, rec := range page.Records {
			skis = append(skis, normalizeRecord(rec.Fields))
		}
		if page.Offset == "" {
			return skis, nil
		}
		offset = page.Offset
	}
}

func (a *Airtable) fetchPage(ctx context.Context, offset string) (*airtableResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", a.baseURL, url.PathEscape(a.baseID), url.PathEscape(a.table))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build airtable request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	// pageSize bounds one page; maxRecords would cap the whole listing
	// and stop the API from ever issuing an offset.
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(a.pageSize))
	if offset != "" {
		q.Set("offset", offset)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var page airtableResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return &page, nil
}

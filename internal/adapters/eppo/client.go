// Package eppo implements the taxonomy gateway against the EPPO global
// database REST API (gd.eppo.int).
package eppo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/example/cropdb/internal/ports/secondary"
)

// DefaultBaseURL is the production EPPO REST endpoint.
const DefaultBaseURL = "https://data.eppo.int/api/rest/1.0"

// Client talks to the EPPO global database REST API. Authentication is an
// authtoken query parameter on every request.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a gateway against the given base URL. An empty baseURL
// selects the production endpoint.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type taxonPayload struct {
	Code     string `json:"code"`
	FullName string `json:"fullname"`
}

type namePayload struct {
	FullName  string `json:"fullname"`
	LangISO   string `json:"langiso"`
	Preferred int    `json:"preferred"`
}

// GetTaxon retrieves taxon details for an EPPO code.
func (c *Client) GetTaxon(ctx context.Context, code string) (*secondary.Taxon, error) {
	var payload taxonPayload
	if err := c.get(ctx, "/taxon/"+url.PathEscape(code), &payload); err != nil {
		return nil, err
	}
	return &secondary.Taxon{Code: payload.Code, FullName: payload.FullName}, nil
}

// GetNames retrieves all names (preferred and synonyms) for an EPPO code.
func (c *Client) GetNames(ctx context.Context, code string) ([]secondary.TaxonName, error) {
	var payload []namePayload
	if err := c.get(ctx, "/taxon/"+url.PathEscape(code)+"/names", &payload); err != nil {
		return nil, err
	}

	names := make([]secondary.TaxonName, 0, len(payload))
	for _, n := range payload {
		names = append(names, secondary.TaxonName{
			FullName:  n.FullName,
			LangISO:   n.LangISO,
			Preferred: n.Preferred,
		})
	}
	return names, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid EPPO URL: %w", err)
	}
	q := u.Query()
	q.Set("authtoken", c.token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create EPPO request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("EPPO request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("EPPO API returned %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode EPPO response: %w", err)
	}

	return nil
}

// Ensure Client implements the gateway
var _ secondary.TaxonomyGateway = (*Client)(nil)

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"allure-rental/internal/domain/dress"
	"allure-rental/internal/pkg/config"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	apiKeyHeader = "X-API-Key"

	defaultPage  = 1
	defaultLimit = 12
	facetLimit   = 100

	// error bodies are only logged, never parsed
	maxErrorBody = 4 << 10
)

var (
	ErrNotFound    = errs.Mark(errs.New("catalog: dress not found"), shared.ErrDressNotFound)
	ErrUnavailable = errs.Mark(errs.New("catalog: upstream unavailable"), shared.ErrCatalogUnavailable)
	ErrSchema      = errs.Mark(errs.New("catalog: unexpected payload"), shared.ErrCatalogSchema)
)

// Client reads published dresses from the catalog API. It never writes.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.CatalogConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg config.CatalogConfig, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    hc,
	}
}

func (c *Client) FindDress(ctx context.Context, id uuid.UUID) (*dress.Dress, error) {
	var env singleEnvelope
	status, err := c.get(ctx, "/dresses/"+id.String(), nil, &env)
	if status == http.StatusNotFound {
		return nil, errs.Wrapf(ErrNotFound, "dress %s", id)
	}
	if err != nil {
		return nil, err
	}
	if !env.Success || env.Data == nil {
		return nil, errs.Wrapf(ErrNotFound, "dress %s", id)
	}

	d, err := env.Data.toDomain()
	if err != nil {
		return nil, errs.Wrapf(err, "dress %s", id)
	}
	if !d.Published {
		return nil, errs.Wrapf(ErrNotFound, "dress %s is not published", id)
	}
	if d.ID != id {
		return nil, errs.Wrapf(ErrSchema, "asked for dress %s, got %s", id, d.ID)
	}
	return d, nil
}

func (c *Client) ListDresses(ctx context.Context, filters dress.Filters) (*dress.Page, error) {
	page := filters.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filters.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	var env listEnvelope
	if _, err := c.get(ctx, "/dresses/details-view", listQuery(filters, page, limit), &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Data == nil {
		// the upstream answers success:false for an empty selection as well
		slog.Warn("catalog list returned no data", "success", env.Success)
		return &dress.Page{Dresses: []*dress.Dress{}, Total: 0, Page: page, Limit: limit}, nil
	}

	dresses := make([]*dress.Dress, 0, len(env.Data))
	for i, raw := range env.Data {
		d, err := raw.toDomain()
		if err != nil {
			return nil, errs.Wrapf(err, "dress at index %d", i)
		}
		if !d.Published {
			continue
		}
		dresses = append(dresses, d)
	}

	return &dress.Page{
		Dresses: dresses,
		Total:   len(dresses),
		Page:    page,
		Limit:   limit,
	}, nil
}

func (c *Client) Facets(ctx context.Context) (*dress.Facets, error) {
	page, err := c.ListDresses(ctx, dress.Filters{Page: 1, Limit: facetLimit})
	if err != nil {
		return nil, err
	}
	return buildFacets(page.Dresses), nil
}

func listQuery(f dress.Filters, page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if f.Sizes != "" {
		q.Set("sizes", f.Sizes)
	}
	if f.Types != "" {
		q.Set("types", f.Types)
	}
	if f.Colors != "" {
		q.Set("colors", f.Colors)
	}
	if f.PriceMax != nil {
		q.Set("priceMax", strconv.FormatFloat(*f.PriceMax, 'f', -1, 64))
	}
	if f.PricePerDayMax != nil {
		q.Set("pricePerDayMax", strconv.FormatFloat(*f.PricePerDayMax, 'f', -1, 64))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// get decodes a 2xx JSON body into out. The HTTP status is returned even on
// error so callers can tell a missing resource from an outage.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, errs.Wrap(err, "build catalog request")
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errs.Wrapf(ErrUnavailable, "GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.Warn("catalog request failed",
			"path", path,
			"status", resp.StatusCode,
			"body", string(body))
		return resp.StatusCode, errs.Wrapf(ErrUnavailable, "GET %s: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, errs.Wrapf(ErrSchema, "GET %s: %v", path, err)
	}
	return resp.StatusCode, nil
}

// decimal accepts both "49.90" and 49.9 since the API is not consistent.
type decimal string

func (d *decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*d = decimal(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	*d = decimal(n.String())
	return nil
}

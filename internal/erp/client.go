package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"saleportal/internal/config"
	apierrors "saleportal/internal/lib/errors"
	"saleportal/internal/lib/sl"
)

// Client is the typed HTTP client to the record store. Each call is one
// POST to {url}/{database}/{model}/{method} with a JSON payload and a
// bearer key; the store opens and closes its own transaction per call.
type Client struct {
	baseURL  string
	database string
	apiKey   string
	http     *http.Client
	log      *slog.Logger
}

func NewClient(conf *config.Config, log *slog.Logger) (*Client, error) {
	if conf.ERP.Url == "" {
		return nil, fmt.Errorf("erp url is not configured")
	}
	if conf.ERP.Database == "" {
		return nil, fmt.Errorf("erp database is not configured")
	}

	Configure(conf.ERP.RateLimit, conf.ERP.Burst)

	return &Client{
		baseURL:  conf.ERP.Url,
		database: conf.ERP.Database,
		apiKey:   conf.ERP.ApiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log.With(sl.Module("erp")),
	}, nil
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) endpoint(model, method string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse erp url: %w", err)
	}
	u.Path = path.Join(u.Path, c.database, model, method)
	return u.String(), nil
}

func (c *Client) call(ctx context.Context, model, method string, payload any, out any) error {
	if err := Acquire(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	fullURL, err := c.endpoint(model, method)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	c.log.With(
		slog.String("model", model),
		slog.String("method", method),
		slog.Int("status", resp.StatusCode),
	).Debug("record store call")

	switch {
	case resp.StatusCode == http.StatusOK:
		// fallthrough to decode
	case resp.StatusCode == http.StatusConflict,
		resp.StatusCode == http.StatusUnprocessableEntity:
		// The store refused the mutation on its own business rules.
		var eb errorBody
		msg := fmt.Sprintf("%s.%s rejected", model, method)
		if json.Unmarshal(bodyBytes, &eb) == nil && eb.Error.Message != "" {
			msg = eb.Error.Message
		}
		return apierrors.NewExternalRejectedError(msg)
	default:
		return apierrors.NewGatewayError(model + "." + method).
			WithDetail("status", fmt.Sprint(resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("decode %s.%s response: %w", model, method, err)
	}
	return nil
}

// Search returns the ids matching filter in the given window and order.
func (c *Client) Search(ctx context.Context, model string, filter Filter, offset, limit int, order []OrderBy) ([]int64, error) {
	payload := map[string]any{
		"filter": filter,
		"offset": offset,
		"limit":  limit,
		"order":  order,
	}
	var ids []int64
	if err := c.call(ctx, model, "search", payload, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SearchCount returns the total match count for filter.
func (c *Client) SearchCount(ctx context.Context, model string, filter Filter) (int, error) {
	payload := map[string]any{"filter": filter}
	var count int
	if err := c.call(ctx, model, "search_count", payload, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// Read fetches the named fields of the given records into out, a pointer
// to a slice of the matching entity type. The store fails the whole call
// if any id is missing.
func (c *Client) Read(ctx context.Context, model string, ids []int64, fields []string, out any) error {
	payload := map[string]any{
		"ids":    ids,
		"fields": fields,
	}
	return c.call(ctx, model, "read", payload, out)
}

// Create inserts the given records and returns their new ids.
func (c *Client) Create(ctx context.Context, model string, records any) ([]int64, error) {
	payload := map[string]any{"records": records}
	var ids []int64
	if err := c.call(ctx, model, "create", payload, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes the given records.
func (c *Client) Delete(ctx context.Context, model string, ids []int64) error {
	payload := map[string]any{"ids": ids}
	return c.call(ctx, model, "delete", payload, nil)
}

// Write updates the named fields on the given records.
func (c *Client) Write(ctx context.Context, model string, ids []int64, values map[string]any) error {
	payload := map[string]any{
		"ids":    ids,
		"values": values,
	}
	return c.call(ctx, model, "write", payload, nil)
}

// Execute invokes a workflow method (cancel, draft, quote) on the given
// records. The store is the sole authority on whether the transition is
// legal; a refusal comes back as an EXTERNAL_REJECTED error.
func (c *Client) Execute(ctx context.Context, model, method string, ids []int64) error {
	payload := map[string]any{"ids": ids}
	return c.call(ctx, model, method, payload, nil)
}

// Report renders a report for the given records and returns the document
// bytes with the store-reported mime type.
func (c *Client) Report(ctx context.Context, report string, ids []int64) ([]byte, string, error) {
	payload := map[string]any{"ids": ids}
	var result struct {
		Data     []byte `json:"data"` // base64 on the wire
		MimeType string `json:"mime_type"`
	}
	if err := c.call(ctx, report, "execute_report", payload, &result); err != nil {
		return nil, "", err
	}
	return result.Data, result.MimeType, nil
}

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/pkg/codec"
	"github.com/zhulik/namefilter/pkg/filter"
	"github.com/zhulik/namefilter/pkg/wld"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

const errorBodyLimit = 1024

type matchRequestBody struct {
	Mode    wld.Mode `json:"mode"`
	Subject *string  `json:"subject"`
	Pattern *string  `json:"pattern"`
}

type matchedResponseBody struct {
	Matched bool `json:"matched"`
}

type evaluateRequestBody struct {
	Class  string `json:"class"`
	Method string `json:"method"`
}

type Client struct {
	Config     *core.ClientConfig
	httpClient *http.Client
}

func (c *Client) Init(_ context.Context) error {
	c.httpClient = &http.Client{}

	return nil
}

func (c *Client) ListFilters(ctx context.Context) ([]string, error) {
	var ids []string

	err := c.do(ctx, http.MethodGet, "/filters", nil, http.StatusOK, &ids)

	return ids, err
}

func (c *Client) GetFilter(ctx context.Context, id string) (*filter.Filter, error) {
	var f filter.Filter

	err := c.do(ctx, http.MethodGet, filterPath(id), nil, http.StatusOK, &f)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (c *Client) CreateFilter(ctx context.Context, f *filter.Filter) error {
	return c.do(ctx, http.MethodPost, "/filters", f, http.StatusCreated, nil)
}

func (c *Client) UpdateFilter(ctx context.Context, f *filter.Filter) error {
	return c.do(ctx, http.MethodPut, filterPath(f.ID), f, http.StatusOK, nil)
}

func (c *Client) DeleteFilter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, filterPath(id), nil, http.StatusNoContent, nil)
}

func (c *Client) EvaluateFilter(ctx context.Context, id, className, methodName string) (bool, error) {
	var response matchedResponseBody

	body := evaluateRequestBody{Class: className, Method: methodName}

	err := c.do(ctx, http.MethodPost, filterPath(id)+"/evaluate", body, http.StatusOK, &response)

	return response.Matched, err
}

// Match asks the server to match subject against pattern.
func (c *Client) Match(ctx context.Context, mode wld.Mode, subject, pattern string) (bool, error) {
	var response matchedResponseBody

	body := matchRequestBody{Mode: mode, Subject: &subject, Pattern: &pattern}

	err := c.do(ctx, http.MethodPost, "/match", body, http.StatusOK, &response)

	return response.Matched, err
}

func filterPath(id string) string {
	return "/filters/" + url.PathEscape(id)
}

// do sends body as JSON, verifies the response status matches expectedStatus
// and decodes the response into result when it is not nil.
func (c *Client) do(ctx context.Context, method, path string, body any, expectedStatus int, result any) error {
	var reader io.Reader

	if body != nil {
		jsonBody, err := codec.Marshal(codec.FormatJSON, body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(c.Config.ServerURL, "/")+path, reader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

		return fmt.Errorf("%w: unexpected status %d: %s",
			ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(message)))
	}

	if result == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

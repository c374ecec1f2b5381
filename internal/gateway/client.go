package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/identity"
)

// ErrBackendUnavailable is returned when the backend cannot be reached.
var ErrBackendUnavailable = apperror.New(http.StatusBadGateway, "shareit server unavailable")

// Response is a relayed backend response.
type Response struct {
	Status int
	Body   []byte
}

// Client forwards validated requests to the backend service and relays
// the response verbatim. Domain errors are the backend's to produce; the
// client never reinterprets status codes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a backend client with the given base URL and timeout.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Do forwards a request. userID of 0 means the identity header is absent;
// body of nil means no payload. requestID is propagated for correlation.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, userID int64, body any, requestID string) (*Response, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set(identity.Header, strconv.FormatInt(userID, 10))
	}
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return nil, ErrBackendUnavailable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("read backend response failed")
		return nil, ErrBackendUnavailable
	}

	return &Response{Status: resp.StatusCode, Body: data}, nil
}

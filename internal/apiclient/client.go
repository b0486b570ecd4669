package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/MarkMiraclee/vvclient/internal/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// TokenSource yields the bearer token of the current session, or "" when logged out.
type TokenSource interface {
	Token() string
}

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type Client struct {
	address string
	tokens  TokenSource
	log     *logrus.Logger
	client  *resty.Client
}

func NewClient(address string, tokens TokenSource, log *logrus.Logger, timeout time.Duration) *Client {
	address = strings.TrimRight(address, "/")
	if address != "" && !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}

	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		address: address,
		tokens:  tokens,
		log:     log,
		client:  client,
	}
}

// Call sends a JSON request to path and decodes the response into out.
// An empty method means GET. A success body that is not JSON leaves out zeroed.
func (c *Client) Call(ctx context.Context, method, path string, body, out any) error {
	if method == "" {
		method = http.MethodGet
	}

	requestID := uuid.NewString()
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, requestID)
	if token := c.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, c.address+path)
	duration := time.Since(start)
	metrics.APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())

	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(method, path, metrics.Status(0)).Inc()
		c.log.WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"request_id": requestID,
		}).Errorf("api request failed: %v", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	metrics.APIRequestsTotal.WithLabelValues(method, path, metrics.Status(resp.StatusCode())).Inc()
	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode(),
		"duration":   duration,
		"request_id": requestID,
	}).Debug("api request completed")

	if !resp.IsSuccess() {
		return newAPIError(resp.StatusCode(), resp.Body())
	}

	decode(resp.Body(), out)
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		var detail string
		if err := json.Unmarshal(eb.Detail, &detail); err == nil && detail != "" {
			return &APIError{Status: status, Message: detail}
		}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("请求失败 (%d)", status)}
}

// decode fills out from body. A body that is not JSON leaves out zeroed; a value of the
// wrong type only leaves its own field unset.
func decode(body []byte, out any) {
	if out == nil {
		return
	}
	if err := json.Unmarshal(body, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return
		}
		v := reflect.ValueOf(out)
		if v.Kind() == reflect.Pointer && !v.IsNil() {
			v.Elem().Set(reflect.Zero(v.Elem().Type()))
		}
	}
}

// Message returns the server-provided message carried by err, or fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

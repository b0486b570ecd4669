package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(ts.URL, staticToken(token), log, 0)
}

func TestCall_GetWithToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/me", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))
		w.Write([]byte(`{"id":"u1","unread_messages":3}`))
	}, "tok-1")

	var out struct {
		ID     string `json:"id"`
		Unread int    `json:"unread_messages"`
	}
	require.NoError(t, c.Call(context.Background(), "", "/api/me", nil, &out))
	assert.Equal(t, "u1", out.ID)
	assert.Equal(t, 3, out.Unread)
}

func TestCall_PostBodyWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["account"])
		w.Write([]byte(`{"token":"t"}`))
	}, "")

	var out struct {
		Token string `json:"token"`
	}
	err := c.Call(context.Background(), http.MethodPost, "/api/login", map[string]string{"account": "alice"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "t", out.Token)
}

func TestCall_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "detail", status: http.StatusUnauthorized, body: `{"detail":"invalid credentials"}`, wantMessage: "invalid credentials"},
		{name: "no detail", status: http.StatusInternalServerError, body: `{}`, wantMessage: "请求失败 (500)"},
		{name: "not json", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantMessage: "请求失败 (502)"},
		{name: "structured detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"field required"}]}`, wantMessage: "请求失败 (422)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}, "")

			err := c.Call(context.Background(), http.MethodGet, "/api/orders", nil, nil)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Error())
		})
	}
}

func TestCall_MalformedSuccessBodyIsEmptyObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}, "")

	out := struct {
		OrderID string `json:"order_id"`
	}{OrderID: "stale"}
	require.NoError(t, c.Call(context.Background(), http.MethodPost, "/api/orders", struct{}{}, &out))
	assert.Empty(t, out.OrderID)
}

func TestCall_MistypedFieldKeepsTheRest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"order_id":"abcdef1234567890","status":42}`))
	}, "")

	out := struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
	}{Status: "stale"}
	require.NoError(t, c.Call(context.Background(), http.MethodPost, "/api/orders", struct{}{}, &out))
	assert.Equal(t, "abcdef1234567890", out.OrderID)
	assert.Equal(t, "stale", out.Status)
}

func TestCall_TransportError(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewClient("127.0.0.1:1", staticToken(""), log, 0)

	err := c.Call(context.Background(), http.MethodGet, "/api/me", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "登录失败", Message(err, "登录失败"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "boom", Message(&APIError{Status: 400, Message: "boom"}, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("network"), "fallback"))
}

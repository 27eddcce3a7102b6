package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  map[string][]string
	header http.Header
	body   []byte
}

func newTestServer(t *testing.T, status int, response string, rec *recorded) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if rec != nil {
			*rec = recorded{
				method: r.Method,
				path:   r.URL.Path,
				query:  r.URL.Query(),
				header: r.Header.Clone(),
				body:   body,
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Get(t *testing.T) {
	var rec recorded
	srv := newTestServer(t, http.StatusOK, `{"status": 200}`, &rec)
	c := New(srv.URL, nil)

	var res map[string]any
	err := c.Request(context.Background(), MethodGet, "sample", nil, &res)
	require.NoError(t, err)

	assert.Equal(t, float64(200), res["status"])
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/sample", rec.path)
	assert.Empty(t, rec.query)
	assert.Equal(t, "application/json", rec.header.Get("Accept"))
	assert.Equal(t, DefaultUserAgent, rec.header.Get("User-Agent"))
}

func TestClient_PostSendsFilteredJSONBody(t *testing.T) {
	var rec recorded
	srv := newTestServer(t, http.StatusCreated, `{"status": 201}`, &rec)
	c := New(srv.URL, nil)

	var res map[string]any
	err := c.Request(context.Background(), MethodPost, "sample", Params{"data": "Post data", "agreement": ""}, &res)
	require.NoError(t, err)

	assert.Equal(t, float64(201), res["status"])
	assert.Equal(t, http.MethodPost, rec.method)
	assert.JSONEq(t, `{"data": "Post data"}`, string(rec.body))
	assert.Equal(t, "application/json", rec.header.Get("Content-Type"))
}

func TestClient_PutSendsJSONBody(t *testing.T) {
	var rec recorded
	srv := newTestServer(t, http.StatusOK, `{}`, &rec)
	c := New(srv.URL, nil)

	err := c.Request(context.Background(), MethodPut, "agreements/enduser/1/accept/", Params{"user_agent": "ua", "ip_address": "10.0.0.1"}, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/agreements/enduser/1/accept/", rec.path)
	assert.JSONEq(t, `{"user_agent": "ua", "ip_address": "10.0.0.1"}`, string(rec.body))
}

func TestClient_GetTransactionsQuery(t *testing.T) {
	var rec recorded
	srv := newTestServer(t, http.StatusOK, `{"transactions": {}}`, &rec)
	c := New(srv.URL, nil)

	err := c.Request(context.Background(), MethodGet, "accounts/abc/transactions/",
		Params{"date_from": "2021-12-01", "date_to": "2022-01-21"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "/accounts/abc/transactions/", rec.path)
	assert.Equal(t, map[string][]string{"date_from": {"2021-12-01"}, "date_to": {"2022-01-21"}}, rec.query)

	err = c.Request(context.Background(), MethodGet, "accounts/abc/transactions/",
		Params{"date_from": "", "date_to": ""}, nil)
	require.NoError(t, err)

	assert.Equal(t, "/accounts/abc/transactions/", rec.path)
	assert.Empty(t, rec.query)
}

func TestClient_DeleteSendsQuery(t *testing.T) {
	var rec recorded
	srv := newTestServer(t, http.StatusOK, `{"summary": "deleted"}`, &rec)
	c := New(srv.URL, nil)

	err := c.Request(context.Background(), MethodDelete, "requisitions/abc", Params{"limit": 0, "scope": []string{"a", "b"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/requisitions/abc", rec.path)
	assert.Equal(t, map[string][]string{"scope": {"a", "b"}}, rec.query)
}

func TestClient_UnsupportedMethod(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.Request(context.Background(), "PATCH", "sample", nil, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedMethod))
	assert.Equal(t, `method "PATCH" is not supported`, err.Error())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestClient_ErrorResponse(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized,
		`{"summary": "Authentication failed", "detail": "No active account found with the given credentials", "status_code": 401}`, nil)
	c := New(srv.URL, nil)

	var res map[string]any
	err := c.Request(context.Background(), MethodPost, "token/new/", Params{"secret_id": "x"}, &res)
	require.Error(t, err)

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusUnauthorized, re.StatusCode)
	assert.Equal(t, "Authentication failed", re.Summary)
	assert.Equal(t, "No active account found with the given credentials", re.Detail)
	assert.Equal(t, map[string]any{
		"summary":     "Authentication failed",
		"detail":      "No active account found with the given credentials",
		"status_code": float64(401),
	}, re.Response)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.Nil(t, res)
}

func TestClient_FieldErrorResponse(t *testing.T) {
	body := `{"institution_id": {"summary": "Unknown Institution ID ABC", "detail": "Get Institution IDs from /institutions/?country={$COUNTRY_CODE}"}, "status_code": 400}`
	srv := newTestServer(t, http.StatusBadRequest, body, nil)
	c := New(srv.URL, nil)

	err := c.Request(context.Background(), MethodPost, "agreements/enduser/", Params{"institution_id": "ABC"}, nil)

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusBadRequest, re.StatusCode)
	assert.Empty(t, re.Summary)
	assert.JSONEq(t, body, re.Body)

	parsed, ok := re.Response.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, parsed, "institution_id")
	assert.Contains(t, err.Error(), "nordigen returns http status 400")
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, `Bad Gateway`, nil)
	c := New(srv.URL, nil)

	err := c.Request(context.Background(), MethodGet, "institutions/", nil, nil)

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Nil(t, re.Response)
	assert.Equal(t, "nordigen returns http status 502: Bad Gateway", re.Error())
}

func TestClient_SetTokenUpdatesHeader(t *testing.T) {
	var rec recorded
	srv := newTestServer(t, http.StatusOK, `[]`, &rec)
	c := New(srv.URL, nil)

	assert.NotContains(t, c.Headers(), "Authorization")

	c.SetToken("Token")
	assert.Equal(t, "Token", c.Token())
	assert.Equal(t, "Bearer Token", c.Headers()["Authorization"])

	require.NoError(t, c.Request(context.Background(), MethodGet, "institutions/", nil, nil))
	assert.Equal(t, "Bearer Token", rec.header.Get("Authorization"))
}

func TestClient_ExplicitHeadersReplaceShared(t *testing.T) {
	var rec recorded
	srv := newTestServer(t, http.StatusOK, `{}`, &rec)
	c := New(srv.URL, nil)
	c.SetToken("Token")

	err := c.RequestWithHeaders(context.Background(), MethodGet, "sample", nil, map[string]string{"X-Custom": "1"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "1", rec.header.Get("X-Custom"))
	assert.Empty(t, rec.header.Get("Authorization"))
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, WithTimeout(20*time.Millisecond))
	err := c.Request(context.Background(), MethodGet, "sample", nil, nil)
	require.Error(t, err)

	var re *RequestError
	assert.False(t, errors.As(err, &re))
}

type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return http.DefaultTransport.RoundTrip(r)
}

func TestClient_SharedHTTPClientUntouched(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`, nil)
	tr := &countingTransport{}
	shared := &http.Client{Transport: tr}

	c := New(srv.URL, shared, WithTimeout(3*time.Second))
	require.NoError(t, c.Request(context.Background(), MethodGet, "sample", nil, nil))

	assert.Equal(t, time.Duration(0), shared.Timeout)
	assert.Same(t, tr, shared.Transport)
	assert.Equal(t, int32(1), tr.calls.Load())
}

func TestClient_BaseURLTrailingSlash(t *testing.T) {
	var rec recorded
	srv := newTestServer(t, http.StatusOK, `{}`, &rec)
	c := New(srv.URL+"/api/v2/", nil, WithUserAgent("custom-agent"))

	require.NoError(t, c.Request(context.Background(), MethodGet, "institutions/LV/", nil, nil))
	assert.Equal(t, srv.URL+"/api/v2", c.BaseURL())
	assert.Equal(t, "/api/v2/institutions/LV/", rec.path)
	assert.Equal(t, "custom-agent", rec.header.Get("User-Agent"))
}

func TestExtractMessage(t *testing.T) {
	s, d := extractMessage([]byte(`{"summary": "Not found.", "detail": "Not found.", "status_code": 404, "nested": {"summary": "x"}}`))
	assert.Equal(t, "Not found.", s)
	assert.Equal(t, "Not found.", d)

	s, d = extractMessage([]byte(`["not", "an", "object"]`))
	assert.Empty(t, s)
	assert.Empty(t, d)

	raw, _ := json.Marshal(map[string]any{"summary": 1})
	s, _ = extractMessage(raw)
	assert.Empty(t, s)
}

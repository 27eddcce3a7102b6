package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/alapierre/go-nordigen-client/nordigen/util"
	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "nordigen.api")

const (
	DefaultBaseURL   = "https://ob.nordigen.com/api/v2"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Nordigen-Go-v2"
)

type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// Requester issues a single call against the API and decodes the JSON response into result.
// All resource services depend on it.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/requester_mock.go -package mocks github.com/alapierre/go-nordigen-client/nordigen/api Requester
type Requester interface {
	Request(ctx context.Context, method Method, endpoint string, data Params, result any) error
}

// Client executes requests against the API base URL with a shared header set holding the bearer token.
type Client struct {
	rest    *resty.Client
	baseURL string

	mu      sync.RWMutex
	headers map[string]string
	token   string
}

var _ Requester = (*Client)(nil)

type Option func(*Client)

// WithTimeout overrides the per request timeout (default 10s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rest.SetTimeout(d) }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.headers["User-Agent"] = ua }
}

// New creates a request executor. httpClient may be nil, the resty default is used then.
// A given httpClient is copied, its Transport is shared but its own settings are left untouched.
func New(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	var rest *resty.Client
	if httpClient != nil {
		hc := *httpClient
		rest = resty.NewWithClient(&hc)
	} else {
		rest = resty.New()
	}

	rest.SetTimeout(DefaultTimeout).
		SetLogger(logger).
		SetDebug(util.DebugEnabled())

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		rest:    rest,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: map[string]string{
			"accept":       "application/json",
			"Content-Type": "application/json",
			"User-Agent":   DefaultUserAgent,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the active bearer token and the Authorization header sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.headers["Authorization"] = "Bearer " + token
}

// Headers returns a copy of the shared header set.
func (c *Client) Headers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		h[k] = v
	}
	return h
}

func (c *Client) Request(ctx context.Context, method Method, endpoint string, data Params, result any) error {
	return c.RequestWithHeaders(ctx, method, endpoint, data, nil, result)
}

// RequestWithHeaders same as Request, but sends headers instead of the shared header set when not empty.
func (c *Client) RequestWithHeaders(ctx context.Context, method Method, endpoint string, data Params, headers map[string]string, result any) error {

	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
	default:
		return &UnsupportedMethodError{Method: method}
	}

	if len(headers) == 0 {
		headers = c.Headers()
	}

	u := c.baseURL + "/" + endpoint
	data = Filter(data)

	r := c.rest.R().
		SetContext(ctx).
		SetHeaders(headers)

	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}

	switch method {
	case MethodGet, MethodDelete:
		r.SetQueryParamsFromValues(queryValues(data))
	case MethodPost, MethodPut:
		r.SetBody(map[string]any(data))
	}

	logger.Debugf("%s %s", method, u)

	resp, err := r.Execute(string(method), u)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, endpoint)
	}

	traceResponse(u, resp)

	if resp.IsError() {
		return newRequestError(resp)
	}

	body := resp.Body()
	if result == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, endpoint)
	}
	return nil
}

func newRequestError(resp *resty.Response) error {
	body := resp.Body()

	var parsed any
	if len(body) > 0 {
		_ = json.Unmarshal(body, &parsed)
	}
	summary, detail := extractMessage(body)

	return &RequestError{
		StatusCode: resp.StatusCode(),
		Body:       string(body),
		Response:   parsed,
		Summary:    summary,
		Detail:     detail,
	}
}

func queryValues(data Params) url.Values {
	q := url.Values{}
	for k, v := range data {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				q.Add(k, fmt.Sprint(rv.Index(i).Interface()))
			}
			continue
		}
		q.Set(k, fmt.Sprint(v))
	}
	return q
}

func traceResponse(u string, resp *resty.Response) {

	if !util.HttpTraceEnabled() {
		return
	}

	ti := resp.Request.TraceInfo()
	logger.WithFields(logrus.Fields{
		"url":          u,
		"status":       resp.StatusCode(),
		"time":         resp.Time(),
		"dnsLookup":    ti.DNSLookup,
		"connTime":     ti.ConnTime,
		"tlsHandshake": ti.TLSHandshake,
		"serverTime":   ti.ServerTime,
		"totalTime":    ti.TotalTime,
		"connReused":   ti.IsConnReused,
	}).Debug("response trace")
}

package nordigen

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/alapierre/go-nordigen-client/nordigen/api"
	"github.com/alapierre/go-nordigen-client/nordigen/auth"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "nordigen")

// Client facade over the API. It owns the secrets, the request executor with its shared headers
// and the resource services. Token mutation is not meant to race with requests: give each
// concurrent user its own Client or serialise token changes.
type Client struct {
	raw    *api.Client
	tokens *auth.TokenService

	institutions api.InstitutionService
	agreements   api.AgreementService
	requisitions api.RequisitionService

	mu     sync.Mutex
	expiry auth.Expiry
	now    func() time.Time
}

type config struct {
	baseURL    string
	httpClient *http.Client
	apiOpts    []api.Option
}

type Option func(*config)

// WithBaseURL overrides the default https://ob.nordigen.com/api/v2
func WithBaseURL(url string) Option {
	return func(c *config) { c.baseURL = url }
}

// WithTimeout per request timeout, 10s by default.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.apiOpts = append(c.apiOpts, api.WithTimeout(d)) }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.httpClient = hc }
}

func WithUserAgent(ua string) Option {
	return func(c *config) { c.apiOpts = append(c.apiOpts, api.WithUserAgent(ua)) }
}

// NewClient creates the facade. No network call is made; use GenerateToken or SetToken before calling
// authenticated endpoints.
func NewClient(secretID, secretKey string, opts ...Option) (*Client, error) {
	if secretID == "" || secretKey == "" {
		return nil, ErrNoSecrets
	}

	cfg := &config{baseURL: api.DefaultBaseURL}
	for _, o := range opts {
		o(cfg)
	}

	raw := api.New(cfg.baseURL, cfg.httpClient, cfg.apiOpts...)

	return &Client{
		raw:          raw,
		tokens:       auth.NewTokenService(raw, secretID, secretKey),
		institutions: api.NewInstitutionService(raw),
		agreements:   api.NewAgreementService(raw),
		requisitions: api.NewRequisitionService(raw),
		now:          time.Now,
	}, nil
}

func (c *Client) Institutions() api.InstitutionService {
	return c.institutions
}

func (c *Client) Agreements() api.AgreementService {
	return c.agreements
}

func (c *Client) Requisitions() api.RequisitionService {
	return c.requisitions
}

// Account accessor for an account id taken from a requisition.
func (c *Client) Account(id string) api.AccountService {
	return api.NewAccountService(c.raw, api.StandardTier, id)
}

// PremiumAccount same as Account, backed by the premium endpoints.
func (c *Client) PremiumAccount(id string) api.AccountService {
	return api.NewAccountService(c.raw, api.PremiumTier, id)
}

// Request raw access to the request executor for endpoints without a dedicated service.
func (c *Client) Request(ctx context.Context, method api.Method, endpoint string, data api.Params, result any) error {
	return c.raw.Request(ctx, method, endpoint, data, result)
}

func (c *Client) BaseURL() string {
	return c.raw.BaseURL()
}

// Headers copy of the headers sent with every request.
func (c *Client) Headers() map[string]string {
	return c.raw.Headers()
}

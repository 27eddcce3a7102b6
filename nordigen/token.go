package nordigen

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/auth"
	"github.com/alapierre/go-nordigen-client/nordigen/model"
)

var (
	_ auth.TokenRefresher = (*Client)(nil)
	_ auth.TokenState     = (*Client)(nil)
)

func (c *Client) Token() string {
	return c.raw.Token()
}

// SetToken uses an already obtained access token (e.g. kept across restarts) without calling the API.
// Its expiry is unknown, so AccessTokenValid reports false until the next GenerateToken/ExchangeToken.
func (c *Client) SetToken(token string) {
	c.raw.SetToken(token)

	c.mu.Lock()
	c.expiry = auth.Expiry{Skew: auth.DefaultSkew}
	c.mu.Unlock()
}

// GenerateToken issues a new token pair and makes its access token the active one.
func (c *Client) GenerateToken(ctx context.Context) (*model.Token, error) {
	t, err := c.tokens.NewToken(ctx)
	if err != nil {
		return nil, err
	}
	c.activate(t, true)
	return t, nil
}

// ExchangeToken replaces the active token with one obtained for refreshToken.
// Nothing calls it automatically; check AccessTokenValid or an api.ErrUnauthorized error.
func (c *Client) ExchangeToken(ctx context.Context, refreshToken string) (*model.Token, error) {
	t, err := c.tokens.ExchangeToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	c.activate(t, false)
	return t, nil
}

// RenewToken exchanges refreshToken only when the active access token has expired.
// It returns nil when nothing had to be done and auth.ErrRefreshExpired when a new token must be generated.
func (c *Client) RenewToken(ctx context.Context, refreshToken string) (*model.Token, error) {
	return auth.Renew(ctx, c, c, refreshToken)
}

func (c *Client) AccessTokenValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expiry.AccessValid(c.now())
}

func (c *Client) RefreshTokenValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expiry.RefreshValid(c.now())
}

func (c *Client) activate(t *model.Token, fresh bool) {
	c.raw.SetToken(t.Access)

	c.mu.Lock()
	defer c.mu.Unlock()
	if fresh {
		c.expiry = auth.NewExpiry(t, c.now())
		return
	}
	c.expiry.Update(t, c.now())
	if c.expiry.Skew == 0 {
		c.expiry.Skew = auth.DefaultSkew
	}
}

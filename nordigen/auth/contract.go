package auth

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/model"
)

type TokenRefresher interface {
	ExchangeToken(ctx context.Context, refreshToken string) (*model.Token, error)
}

// TokenState validity of the active token pair, see Expiry.
type TokenState interface {
	AccessTokenValid() bool
	RefreshTokenValid() bool
}

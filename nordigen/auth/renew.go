package auth

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/model"
	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"
)

// ErrRefreshExpired the refresh token cannot be exchanged anymore, a new token has to be generated.
var ErrRefreshExpired = errors.New("refresh token expired")

// Renew exchanges refreshToken when the access token is no longer valid.
// Returns nil token when the access token is still good.
func Renew(ctx context.Context, state TokenState, r TokenRefresher, refreshToken string) (*model.Token, error) {
	if state.AccessTokenValid() {
		return nil, nil
	}
	if refreshToken == "" || !state.RefreshTokenValid() {
		return nil, ErrRefreshExpired
	}

	log.Debug("Access token expired, exchanging refresh token")

	t, err := r.ExchangeToken(ctx, refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "renew token")
	}
	return t, nil
}

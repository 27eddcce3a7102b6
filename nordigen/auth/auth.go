package auth

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/api"
	"github.com/alapierre/go-nordigen-client/nordigen/model"
	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"
)

const tokenEndpoint = "token"

// ErrEmptyToken the token endpoint answered without an access token.
var ErrEmptyToken = errors.New("empty access token in response")

// TokenService issues and exchanges tokens. It does not store them, see nordigen.Client for that.
type TokenService struct {
	client    api.Requester
	secretID  string
	secretKey string
}

func NewTokenService(client api.Requester, secretID, secretKey string) *TokenService {
	return &TokenService{client: client, secretID: secretID, secretKey: secretKey}
}

// NewToken obtains a fresh access/refresh pair for the configured secrets.
func (s *TokenService) NewToken(ctx context.Context) (*model.Token, error) {

	log.Debug("Generate new access token")

	payload := api.Params{
		"secret_key": s.secretKey,
		"secret_id":  s.secretID,
	}

	return s.post(ctx, tokenEndpoint+"/new/", payload)
}

// ExchangeToken trades a refresh token for a new access token.
func (s *TokenService) ExchangeToken(ctx context.Context, refreshToken string) (*model.Token, error) {

	log.Debug("Exchange refresh token")

	return s.post(ctx, tokenEndpoint+"/refresh/", api.Params{"refresh": refreshToken})
}

func (s *TokenService) post(ctx context.Context, endpoint string, payload api.Params) (*model.Token, error) {
	res := &model.Token{}
	if err := s.client.Request(ctx, api.MethodPost, endpoint, payload, res); err != nil {
		return nil, errors.Wrap(err, endpoint)
	}
	if res.Access == "" {
		return nil, ErrEmptyToken
	}
	return res, nil
}

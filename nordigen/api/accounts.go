package api

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/model"
)

// Tier selects the accounts endpoint family. Both tiers share one contract and differ in URL prefix.
type Tier struct {
	prefix string
	// country filter is accepted by premium details and transactions only
	country bool
}

var (
	StandardTier = Tier{prefix: "accounts"}
	PremiumTier  = Tier{prefix: "accounts/premium", country: true}
)

func (t Tier) Prefix() string {
	return t.prefix
}

// AccountQuery optional filters; dates are YYYY-MM-DD. Country is sent by the premium tier only.
type AccountQuery struct {
	DateFrom string
	DateTo   string
	Country  string
}

type AccountService interface {
	ID() string
	Metadata(ctx context.Context) (*model.AccountMetadata, error)
	Balances(ctx context.Context) (model.Payload, error)
	Details(ctx context.Context, q AccountQuery) (model.Payload, error)
	Transactions(ctx context.Context, q AccountQuery) (model.Payload, error)
}

type account struct {
	client Requester
	tier   Tier
	id     string
}

func NewAccountService(client Requester, tier Tier, id string) AccountService {
	return &account{client: client, tier: tier, id: id}
}

func (a *account) ID() string {
	return a.id
}

// Metadata processing status, IBAN and institution of the account.
func (a *account) Metadata(ctx context.Context) (*model.AccountMetadata, error) {

	logger.Debugf("Account metadata: %s", a.id)

	res := &model.AccountMetadata{}
	if err := a.client.Request(ctx, MethodGet, a.tier.prefix+"/"+a.id+"/", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *account) Balances(ctx context.Context) (model.Payload, error) {
	return a.get(ctx, "balances", nil)
}

func (a *account) Details(ctx context.Context, q AccountQuery) (model.Payload, error) {
	params := Params{}
	if a.tier.country {
		params["country"] = q.Country
	}
	return a.get(ctx, "details", params)
}

func (a *account) Transactions(ctx context.Context, q AccountQuery) (model.Payload, error) {
	params := Params{
		"date_from": q.DateFrom,
		"date_to":   q.DateTo,
	}
	if a.tier.country {
		params["country"] = q.Country
	}
	return a.get(ctx, "transactions", params)
}

func (a *account) get(ctx context.Context, facet string, params Params) (model.Payload, error) {

	logger.Debugf("Account %s: %s", facet, a.id)

	var res model.Payload
	if err := a.client.Request(ctx, MethodGet, a.tier.prefix+"/"+a.id+"/"+facet+"/", params, &res); err != nil {
		return nil, err
	}
	return res, nil
}

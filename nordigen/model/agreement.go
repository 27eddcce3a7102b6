package model

import "time"

type AccessScope string

const (
	ScopeBalances     AccessScope = "balances"
	ScopeDetails      AccessScope = "details"
	ScopeTransactions AccessScope = "transactions"
)

// FullAccessScope balances, details and transactions
func FullAccessScope() []AccessScope {
	return []AccessScope{ScopeBalances, ScopeDetails, ScopeTransactions}
}

// Agreement end user agreement; consent to access the listed scopes for a bounded history window.
type Agreement struct {
	ID                 string        `json:"id"`
	Created            time.Time     `json:"created"`
	InstitutionID      string        `json:"institution_id"`
	Accepted           *time.Time    `json:"accepted"`
	AccessScope        []AccessScope `json:"access_scope"`
	MaxHistoricalDays  int           `json:"max_historical_days"`
	AccessValidForDays int           `json:"access_valid_for_days"`

	Raw Payload `json:"-"`
}

func (a *Agreement) UnmarshalJSON(b []byte) error {
	type plain Agreement
	return decode(b, (*plain)(a), &a.Raw)
}

type AgreementList struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []Agreement `json:"results"`
}

// Message confirmation returned by delete endpoints.
type Message struct {
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

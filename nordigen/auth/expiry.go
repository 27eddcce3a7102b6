package auth

import (
	"time"

	"github.com/alapierre/go-nordigen-client/nordigen/model"
)

// DefaultSkew how long before real expiry a token is reported as no longer valid.
const DefaultSkew = 30 * time.Second

// Expiry absolute expiry times of a token pair. It never refreshes anything by itself.
type Expiry struct {
	AccessExp  time.Time
	RefreshExp time.Time
	Skew       time.Duration
}

// NewExpiry computes expiry from a token issued at issuedAt.
func NewExpiry(t *model.Token, issuedAt time.Time) Expiry {
	e := Expiry{Skew: DefaultSkew}
	e.Update(t, issuedAt)
	return e
}

// Update applies a newly issued token. Refresh expiry is kept when the response carries none,
// which is the case for the refresh endpoint.
func (e *Expiry) Update(t *model.Token, issuedAt time.Time) {
	issuedAt = issuedAt.UTC()
	e.AccessExp = time.Time{}
	if t.AccessExpires > 0 {
		e.AccessExp = issuedAt.Add(time.Duration(t.AccessExpires) * time.Second)
	}
	if t.Refresh != "" {
		e.RefreshExp = time.Time{}
		if t.RefreshExpires > 0 {
			e.RefreshExp = issuedAt.Add(time.Duration(t.RefreshExpires) * time.Second)
		}
	}
}

func (e Expiry) AccessValid(now time.Time) bool {
	return e.valid(e.AccessExp, now)
}

func (e Expiry) RefreshValid(now time.Time) bool {
	return e.valid(e.RefreshExp, now)
}

func (e Expiry) valid(exp, now time.Time) bool {
	// no expiry known -> treat as expired
	if exp.IsZero() {
		return false
	}
	return exp.Sub(now.UTC()) > e.Skew
}

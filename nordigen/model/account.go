package model

import "time"

// Payload raw account facet (balances, details, transactions) in Berlin Group PSD2 format.
type Payload map[string]any

type AccountMetadata struct {
	ID            string     `json:"id"`
	Created       *time.Time `json:"created"`
	LastAccessed  *time.Time `json:"last_accessed"`
	IBAN          string     `json:"iban"`
	InstitutionID string     `json:"institution_id"`
	Status        string     `json:"status"`
	OwnerName     string     `json:"owner_name,omitempty"`

	Raw Payload `json:"-"`
}

func (m *AccountMetadata) UnmarshalJSON(b []byte) error {
	type plain AccountMetadata
	return decode(b, (*plain)(m), &m.Raw)
}

// AccountData every facet of a single account.
type AccountData struct {
	ID           string
	Metadata     *AccountMetadata
	Details      Payload
	Balances     Payload
	Transactions Payload
}

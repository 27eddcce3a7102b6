package model

import "time"

// Requisition links the redirect flow and an agreement to the accounts granted by the end user.
// Accounts stays empty until the user finishes authorisation in the bank.
type Requisition struct {
	ID            string    `json:"id"`
	Created       time.Time `json:"created"`
	Redirect      string    `json:"redirect"`
	Status        string    `json:"status"`
	InstitutionID string    `json:"institution_id"`
	Agreement     string    `json:"agreement,omitempty"`
	// Agreements older payloads list agreement ids instead of the single Agreement field
	Agreements   []string `json:"agreements,omitempty"`
	Accounts     []string `json:"accounts"`
	Reference    string   `json:"reference"`
	UserLanguage *string  `json:"user_language"`
	Link         string   `json:"link"`

	SSN               *string `json:"ssn,omitempty"`
	AccountSelection  bool    `json:"account_selection"`
	RedirectImmediate bool    `json:"redirect_immediate"`

	// Raw whole object as returned by the API
	Raw Payload `json:"-"`
}

func (r *Requisition) UnmarshalJSON(b []byte) error {
	type plain Requisition
	return decode(b, (*plain)(r), &r.Raw)
}

type RequisitionList struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []Requisition `json:"results"`
}

// RequisitionDTO result of session initialisation: the bank authorisation link and the requisition to poll.
type RequisitionDTO struct {
	Link          string
	RequisitionID string
}

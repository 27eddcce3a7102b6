package model

type Institution struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	BIC                   string   `json:"bic"`
	TransactionTotalDays  Number   `json:"transaction_total_days"`
	MaxAccessValidForDays Number   `json:"max_access_valid_for_days,omitempty"`
	Countries             []string `json:"countries"`
	Logo                  string   `json:"logo"`
	SupportedFeatures     []string `json:"supported_features,omitempty"`

	// Raw whole object as returned by the API, including fields not declared above
	Raw Payload `json:"-"`
}

func (i *Institution) UnmarshalJSON(b []byte) error {
	type plain Institution
	return decode(b, (*plain)(i), &i.Raw)
}

package model

// Token access/refresh token pair. Expiry values are lifetimes in seconds counted from issue time.
// The refresh endpoint returns only Access and AccessExpires.
type Token struct {
	Access         string `json:"access"`
	AccessExpires  int    `json:"access_expires"`
	Refresh        string `json:"refresh,omitempty"`
	RefreshExpires int    `json:"refresh_expires,omitempty"`
}

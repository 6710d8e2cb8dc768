package entity

// TokenResponse is an issued access token together with its lifetime.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
}

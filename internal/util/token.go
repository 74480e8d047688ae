package util

import (
	"time"
)

type BearerToken struct {
	token     string
	expiresIn int64
}

// NewBearerToken wraps a token acquired outside the usual client credential
// flow. Assumed valid for an hour, which outlives any single run.
func NewBearerToken(token string) *BearerToken {
	return &BearerToken{
		token:     token,
		expiresIn: time.Now().Unix() + 3600,
	}
}

func (b *BearerToken) GetToken() string {
	return b.token
}

func (b *BearerToken) IsExpired() bool {
	if b.token == "" {
		return true
	}

	currentTime := time.Now()
	tokenExpirationTime := time.Unix(b.expiresIn, 0)
	return currentTime.After(tokenExpirationTime)
}

type RefreshAuthResponse struct {
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExtExpiresIn int64  `json:"ext_expires_in"`
	AccessToken  string `json:"access_token"`
}

// TokenClient owns the bearer token used for outgoing requests. Callers never
// see the raw token flow, they only ask for a refresh and read Token.
type TokenClient struct {
	Token    *BearerToken
	getToken func() (*RefreshAuthResponse, error)
}

func NewTokenClient(getToken func() (*RefreshAuthResponse, error)) *TokenClient {
	return &TokenClient{
		getToken: getToken,
	}
}

func (t *TokenClient) RefreshAuth() error {
	if t.Token != nil {
		if !t.Token.IsExpired() {
			return nil
		}
	}

	tokenResponse, err := t.getToken()
	if err != nil {
		return err
	}

	currentTime := time.Now()
	t.Token = &BearerToken{
		token:     tokenResponse.AccessToken,
		expiresIn: currentTime.Unix() + tokenResponse.ExpiresIn,
	}

	return nil
}

package util

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken_IsExpired(t *testing.T) {
	empty := &BearerToken{}
	assert.True(t, empty.IsExpired())

	valid := &BearerToken{token: "dummy", expiresIn: time.Now().Unix() + 3600}
	assert.False(t, valid.IsExpired())

	expired := &BearerToken{token: "dummy", expiresIn: time.Now().Unix() - 10}
	assert.True(t, expired.IsExpired())
}

func TestNewBearerToken(t *testing.T) {
	token := NewBearerToken("dummy")
	assert.Equal(t, "dummy", token.GetToken())
	assert.False(t, token.IsExpired())
}

func TestTokenClient_RefreshAuth(t *testing.T) {
	fetchCount := 0
	tc := NewTokenClient(func() (*RefreshAuthResponse, error) {
		fetchCount++
		return &RefreshAuthResponse{
			TokenType:   "Bearer",
			ExpiresIn:   3600,
			AccessToken: "dummy",
		}, nil
	})

	err := tc.RefreshAuth()
	assert.NoError(t, err)
	assert.Equal(t, 1, fetchCount)
	assert.Equal(t, "dummy", tc.Token.GetToken())

	// Token is still valid, no new fetch expected
	err = tc.RefreshAuth()
	assert.NoError(t, err)
	assert.Equal(t, 1, fetchCount)

	tc.Token = &BearerToken{token: "dummy", expiresIn: time.Now().Unix() - 10}
	err = tc.RefreshAuth()
	assert.NoError(t, err)
	assert.Equal(t, 2, fetchCount)
}

func TestTokenClient_RefreshAuthError(t *testing.T) {
	tc := NewTokenClient(func() (*RefreshAuthResponse, error) {
		return nil, errors.New("dummy")
	})

	err := tc.RefreshAuth()
	assert.Error(t, err)
	assert.Nil(t, tc.Token)
}

package redisstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)

	_, err = New(context.Background(), Config{URL: "http://localhost:6379"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis URL")
}

func TestNewWithClient_DefaultKeys(t *testing.T) {
	s := NewWithClient(nil, "", " ")
	assert.Equal(t, DefaultTokenKey, s.tokenKey)
	assert.Equal(t, DefaultSessionKey, s.sessionKey)
}

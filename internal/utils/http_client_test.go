package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:7777", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:7777", client.BaseURL)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:7777", 5*time.Second)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)

	noTimeout := NewHTTPClient("http://localhost:7777", 0)
	assert.Zero(t, noTimeout.GetClient().Timeout)
}

func TestNewHTTPClient_JSONHeaders(t *testing.T) {
	client := NewHTTPClient("http://localhost:7777", 0)

	assert.Equal(t, "application/json", client.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

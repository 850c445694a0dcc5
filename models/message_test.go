package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrigin_String(t *testing.T) {
	assert.Equal(t, "user", OriginUser.String())
	assert.Equal(t, "agent", OriginAgent.String())
	assert.Equal(t, "unknown", Origin(42).String())
}

func TestMessage_IsUser(t *testing.T) {
	assert.True(t, Message{Origin: OriginUser}.IsUser())
	assert.False(t, Message{Origin: OriginAgent}.IsUser())
}

func TestHealthResponse_Healthy(t *testing.T) {
	assert.True(t, HealthResponse{Status: "healthy"}.Healthy())
	assert.False(t, HealthResponse{Status: "degraded"}.Healthy())
	assert.False(t, HealthResponse{}.Healthy())
}

func TestAppBuildInfo_EmptyValuesBecomeNA(t *testing.T) {
	info := NewAppBuildInfo("", "  ", "abc123")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "2026-10-18", "deadbeef")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: 2026-10-18\nBuild commit: deadbeef", info.String())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Equal(t, "N/A", info.BuildVersion())
}

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunar-gate/skilldeck/internal/telemetry"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "config", err: errors.New("load config: missing file"), want: "config_error"},
		{name: "auth session", err: errors.New("not signed in; run 'skilldeck login' first"), want: "auth_error"},
		{name: "auth rejected", err: errors.New("sign in: unauthorized"), want: "auth_error"},
		{name: "network", err: errors.New("dial tcp: connection refused"), want: "network_error"},
		{name: "not found", err: errors.New("skill not found"), want: "not_found_error"},
		{name: "validation", err: errors.New("invalid level \"abc\""), want: "validation_error"},
		{name: "unknown", err: errors.New("something else entirely"), want: "unknown_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}

func TestTrackCLIErrorPassesThrough(t *testing.T) {
	telemetryClient = telemetry.New(nil)

	assert.NoError(t, trackCLIError("list", nil))

	err := errors.New("boom")
	assert.Same(t, err, trackCLIError("list", err))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("Connection Refused", "refused"))
	assert.False(t, containsAny("fine", "network", "timeout"))
}

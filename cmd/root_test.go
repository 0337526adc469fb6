package cmd

import (
	"errors"
	"fmt"
	"testing"

	"beszelctl/internal/hub"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "auth error", err: &hub.AuthError{Message: "token rejected"}, want: ExitCodeAuth},
		{name: "config error", err: &hub.ConfigError{Reason: "no hub URL"}, want: ExitCodeConfig},
		{name: "validation error", err: &hub.ValidationError{Field: "resolution"}, want: ExitCodeValidation},
		{name: "not found error", err: &hub.NotFoundError{Collection: "systems", ID: "x"}, want: ExitCodeNotFound},
		{name: "network error", err: &hub.NetworkError{Endpoint: "http://hub", Type: hub.NetworkErrorRefused}, want: ExitCodeNetwork},
		{name: "persistence error", err: &hub.PersistenceError{Path: "/tmp/creds"}, want: ExitCodePersistence},
		{name: "backend error", err: &hub.BackendError{StatusCode: 500}, want: ExitCodeError},
		{name: "plain error", err: errors.New("boom"), want: ExitCodeError},
		{name: "wrapped auth error", err: fmt.Errorf("whoami: %w", &hub.AuthError{Message: "expired"}), want: ExitCodeAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getExitCode(tt.err))
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	expected := []string{
		"login", "logout", "whoami", "config",
		"systems", "stats", "containers", "alerts",
		"records", "record", "version",
	}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %q not registered", name)
	}
}

func TestNewPrinterRejectsUnknownFormat(t *testing.T) {
	_, err := newPrinter("xml", false)
	assert.Error(t, err)

	p, err := newPrinter("json", true)
	assert.NoError(t, err)
	assert.True(t, p.NoHeaders)
}

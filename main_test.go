package main

import (
	"testing"

	"beszelctl/cmd"
)

func TestVersionDefault(t *testing.T) {
	if version != "dev" {
		t.Errorf("Expected default version to be 'dev', got %s", version)
	}
}

func TestSetVersion(t *testing.T) {
	// SetVersion must accept any build-time version string without panic.
	cmd.SetVersion("1.2.3")
	cmd.SetVersion(version)
}

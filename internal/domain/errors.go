package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkMismatch is returned when an RPC serves a different chain than requested
	ErrNetworkMismatch = errors.New("chain ID mismatch")

	// ErrArtifactNotFound is returned when an included forge artifact is missing
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrInvalidBindgenConfig is returned when bindgen.toml fails validation
	ErrInvalidBindgenConfig = errors.New("invalid bindgen config")

	// ErrNoProject is returned when a command needs a Foundry project and none was found
	ErrNoProject = errors.New("not in a Foundry project (foundry.toml not found)")

	// ErrNonInteractive is returned when a prompt is needed but prompts are disabled
	ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")
)

// ConfigErrors collects every validation problem of a config file
type ConfigErrors struct {
	Path   string
	Issues []string
}

func (e *ConfigErrors) Error() string {
	return fmt.Sprintf("%s: %s:\n  - %s", ErrInvalidBindgenConfig, e.Path, strings.Join(e.Issues, "\n  - "))
}

func (e *ConfigErrors) Unwrap() error {
	return ErrInvalidBindgenConfig
}

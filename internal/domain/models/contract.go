package models

import (
	"encoding/json"
	"strings"
)

// Contract is a contract collected for binding generation
type Contract struct {
	Name string `json:"name"`
	// ArtifactPath is relative to the project root; empty for contracts given by ABI file
	ArtifactPath string          `json:"artifactPath,omitempty"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode,omitempty"`
}

// HasBytecode reports whether the contract can be deployed from its binding
func (c *Contract) HasBytecode() bool {
	return c.Bytecode != "" && c.Bytecode != "0x"
}

// HasABI reports whether the ABI holds at least one entry
func (c *Contract) HasABI() bool {
	trimmed := strings.TrimSpace(string(c.ABI))
	return trimmed != "" && trimmed != "[]" && trimmed != "null"
}

// BytecodeObject represents bytecode information in a Foundry artifact
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap"`
	LinkReferences map[string]any `json:"linkReferences"`
}

// Artifact represents a Foundry compilation artifact
type Artifact struct {
	ABI               json.RawMessage   `json:"abi"`
	Bytecode          BytecodeObject    `json:"bytecode"`
	DeployedBytecode  BytecodeObject    `json:"deployedBytecode"`
	MethodIdentifiers map[string]string `json:"methodIdentifiers"`
	RawMetadata       string            `json:"rawMetadata"`
	Metadata          ArtifactMetadata  `json:"metadata"`
}

// ArtifactMetadata represents the metadata section of a Foundry artifact
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Language string `json:"language"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// ContractName returns the compilation target's contract name, or "" if unknown
func (a *Artifact) ContractName() string {
	for _, name := range a.Metadata.Settings.CompilationTarget {
		return name
	}
	return ""
}

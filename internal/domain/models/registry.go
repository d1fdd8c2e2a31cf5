package models

// DeploymentStatus is the on-chain state of one address table entry
type DeploymentStatus string

const (
	StatusPending  DeploymentStatus = "pending"
	StatusDeployed DeploymentStatus = "deployed"
	StatusNoCode   DeploymentStatus = "no-code"
	StatusError    DeploymentStatus = "error"
)

// AddressEntry is one row of a chain's address table
type AddressEntry struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	ABI     string `json:"abi,omitempty" yaml:"abi,omitempty"`
}

// Deployed reports whether an address has been recorded
func (e AddressEntry) Deployed() bool {
	return e.Address != ""
}

// ChainAddresses is the address table of one chain
type ChainAddresses struct {
	ChainID uint64         `json:"chainId" yaml:"chainId"`
	Network string         `json:"network" yaml:"network"`
	Entries []AddressEntry `json:"contracts" yaml:"contracts"`
}

// DeploymentCheck is the result of checking one entry against a chain
type DeploymentCheck struct {
	Entry    AddressEntry     `json:"entry"`
	Status   DeploymentStatus `json:"status"`
	CodeSize int              `json:"codeSize,omitempty"`
	Reason   string           `json:"reason,omitempty"`
}

// FindingSeverity grades an audit finding
type FindingSeverity string

const (
	SeverityWarning FindingSeverity = "warning"
	SeverityError   FindingSeverity = "error"
)

// AuditFinding is a consistency problem found in the registry data
type AuditFinding struct {
	ChainID  uint64          `json:"chainId,omitempty"`
	Contract string          `json:"contract,omitempty"`
	Severity FindingSeverity `json:"severity"`
	Message  string          `json:"message"`
}

package xrplsale

import (
	"fmt"
	"strings"
)

// Environment selects the API host a client talks to.
type Environment string

const (
	// EnvironmentProduction targets the production API.
	EnvironmentProduction Environment = "production"

	// EnvironmentTestnet targets the testnet API.
	EnvironmentTestnet Environment = "testnet"
)

// BaseURL returns the default base URL for this environment. The zero value
// resolves to production.
func (e Environment) BaseURL() string {
	if e == EnvironmentTestnet {
		return "https://api-testnet.xrpl.sale/v1"
	}

	return "https://api.xrpl.sale/v1"
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	if e == "" {
		return string(EnvironmentProduction)
	}

	return string(e)
}

// ParseEnvironment parses an environment name. It accepts "production"/"prod"
// and "testnet"/"test", case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(s) {
	case "production", "prod":
		return EnvironmentProduction, nil
	case "testnet", "test":
		return EnvironmentTestnet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEnvironment, s)
	}
}

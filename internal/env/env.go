// Package env defines environment variables used inside the library.
package env

// Defines all keys of the environment variables.
const (
	// ContractMode selects the default contract-checking mode of the
	// checked package: "off", "panic" or "error".
	// The default is "panic".
	ContractMode = "LINKEDSTACK_CONTRACT"

	// ErrTrace enables call-stack capture on created errors.
	// To enable it, set LINKEDSTACK_ERR_TRACE=1.
	ErrTrace = "LINKEDSTACK_ERR_TRACE"
)

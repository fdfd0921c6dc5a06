package bindkit

import "fmt"

// Lifetime specifies how instances produced for a registered key are reused.
//
// Available lifetimes:
//   - [Transient] specifies that a new instance is produced for each activation.
//   - [Scoped] specifies that an instance is produced once per activation scope.
//   - [Singleton] specifies that an instance is produced once per Provider.
type Lifetime uint8

const (
	// Transient specifies that a new instance is produced for each activation.
	//
	// This is the default lifetime for services.
	Transient Lifetime = iota

	// Scoped specifies that an instance is produced once per activation scope.
	Scoped Lifetime = iota

	// Singleton specifies that an instance is produced once and every
	// subsequent activation returns the same instance, for the life of the
	// Provider. Rebuilding the Provider resets all singleton state.
	Singleton Lifetime = iota
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case Scoped:
		return "Scoped"
	case Singleton:
		return "Singleton"
	default:
		return fmt.Sprintf("Unknown Lifetime %d", l)
	}
}

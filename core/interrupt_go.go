//go:build !tinygo

package core

// State is a placeholder for interrupt state on regular Go
type State uintptr

// irqDepth counts open critical sections so host tests can check that
// hardware sequences run with interrupts masked.
var irqDepth int

// DisableInterrupts only tracks nesting on regular Go (for testing)
func DisableInterrupts() State {
	irqDepth++
	return State(irqDepth - 1)
}

// RestoreInterrupts only tracks nesting on regular Go (for testing)
func RestoreInterrupts(state State) {
	irqDepth = int(state)
}

// InterruptsDisabled reports whether a critical section is open
func InterruptsDisabled() bool {
	return irqDepth > 0
}

//go:build !tinygo

package mmio

// WriteHook models hardware behaviour on a simulated register. It is
// called with the previous and newly written value and returns what the
// register reads back as afterwards.
type WriteHook func(old, written uint32) uint32

// Write is one store recorded by the simulated memory map.
type Write struct {
	Addr  uintptr
	Value uint32
}

var (
	simMemory = make(map[uintptr]uint32)
	simHooks  = make(map[uintptr]WriteHook)
	simWrites []Write
	simReads  = make(map[uintptr]int)
)

// Get reads the simulated register.
func (r Reg32) Get() uint32 {
	simReads[uintptr(r)]++
	return simMemory[uintptr(r)]
}

// Set stores to the simulated register, running its write hook.
func (r Reg32) Set(value uint32) {
	addr := uintptr(r)
	simWrites = append(simWrites, Write{Addr: addr, Value: value})
	if hook, ok := simHooks[addr]; ok {
		value = hook(simMemory[addr], value)
	}
	simMemory[addr] = value
}

// Reset clears the simulated memory map, hooks and access logs.
func Reset() {
	simMemory = make(map[uintptr]uint32)
	simHooks = make(map[uintptr]WriteHook)
	simWrites = nil
	simReads = make(map[uintptr]int)
}

// Hook installs a write hook on the register at addr.
func Hook(addr uintptr, hook WriteHook) {
	simHooks[addr] = hook
}

// Poke stores value at addr without running hooks or logging the write.
func Poke(addr uintptr, value uint32) {
	simMemory[addr] = value
}

// Peek returns the value at addr without logging a read.
func Peek(addr uintptr) uint32 {
	return simMemory[addr]
}

// Writes returns the stores recorded since the last Reset or ClearLog.
func Writes() []Write {
	return simWrites
}

// WritesTo returns the values stored to addr, in order.
func WritesTo(addr uintptr) []uint32 {
	var out []uint32
	for _, w := range simWrites {
		if w.Addr == addr {
			out = append(out, w.Value)
		}
	}
	return out
}

// Reads returns how many times addr has been read.
func Reads(addr uintptr) int {
	return simReads[addr]
}

// ClearLog forgets recorded reads and writes but keeps memory and hooks.
func ClearLog() {
	simWrites = nil
	simReads = make(map[uintptr]int)
}

// Package mmio provides typed access to memory-mapped 32-bit registers.
// On TinyGo builds a Reg32 is a volatile load/store at its address; on
// regular Go builds it is backed by a simulated memory map so chip code
// can be exercised by host tests.
package mmio

// Reg32 is the address of a 32-bit memory-mapped register.
type Reg32 uintptr

// Addr returns the register address.
func (r Reg32) Addr() uintptr {
	return uintptr(r)
}

// SetBits sets the bits in value, leaving all others untouched.
func (r Reg32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits clears the bits in value, leaving all others untouched.
func (r Reg32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reports whether any of the bits in value are set.
func (r Reg32) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

// ReplaceBits replaces the field selected by mask (unshifted) at pos
// with value.
func (r Reg32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}

// Field returns the field selected by mask (unshifted) at pos.
func (r Reg32) Field(mask uint32, pos uint8) uint32 {
	return (r.Get() >> pos) & mask
}

//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

func (r Reg32) reg() *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(r)))
}

// Get performs a volatile load of the register.
func (r Reg32) Get() uint32 {
	return r.reg().Get()
}

// Set performs a volatile store to the register.
func (r Reg32) Set(value uint32) {
	r.reg().Set(value)
}

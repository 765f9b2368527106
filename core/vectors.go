package core

import "errors"

// Vector table check errors
var (
	ErrErasedVectors = errors.New("application vector table is erased")
	ErrStackPointer  = errors.New("initial stack pointer outside SRAM")
	ErrResetHandler  = errors.New("reset handler outside application flash")
	ErrNotThumb      = errors.New("reset handler is not a Thumb address")
)

// erasedWord is the content of unprogrammed flash
const erasedWord = 0xFFFFFFFF

// CheckVectorTable checks the first two words of an application vector
// table (initial stack pointer and reset handler) against the memory
// layout in cfg. The stack pointer may equal the end of SRAM since the
// stack grows down before the first push.
func CheckVectorTable(cfg Config, sp, reset uint32) error {
	if sp == erasedWord && reset == erasedWord {
		return ErrErasedVectors
	}
	if sp < cfg.RAMStart || sp > cfg.RAMEnd() {
		return ErrStackPointer
	}
	if reset&1 == 0 {
		return ErrNotThumb
	}
	if addr := reset &^ 1; addr < cfg.ApplicationStart || addr >= cfg.FlashEnd() {
		return ErrResetHandler
	}
	return nil
}

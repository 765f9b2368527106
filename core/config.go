package core

import (
	"errors"
	"fmt"
)

// HSIFrequency is the STM32F1 internal RC oscillator frequency
const HSIFrequency = 8000000

// Config holds the build-time chip configuration consumed by the boot path
type Config struct {
	ClockFreq        uint32 // Target core (SYSCLK) frequency in Hz
	ClockRefFreq     uint32 // External crystal frequency in Hz
	ClockRefInternal bool   // Drive the PLL from HSI/2 instead of HSE

	FlashStart       uint32 // Bootloader flash start (its vector table)
	FlashSize        uint32 // Total flash size in bytes
	RAMStart         uint32
	RAMSize          uint32
	ApplicationStart uint32 // Application vector table address

	MagicKey uint16 // Backup register value requesting bootloader entry
}

// DefaultConfig returns the configuration of a 72MHz STM32F103 with an
// 8MHz crystal, 64KiB flash and an 8KiB bootloader.
func DefaultConfig() Config {
	return Config{
		ClockFreq:        72000000,
		ClockRefFreq:     8000000,
		ClockRefInternal: false,
		FlashStart:       0x08000000,
		FlashSize:        64 * 1024,
		RAMStart:         0x20000000,
		RAMSize:          20 * 1024,
		ApplicationStart: 0x08002000,
		MagicKey:         0x5AA5,
	}
}

// PeripheralFrequency is the APB clock; both buses run at SYSCLK/2
func (c Config) PeripheralFrequency() uint32 {
	return c.ClockFreq / 2
}

// FlashEnd is the first address past the end of flash
func (c Config) FlashEnd() uint32 {
	return c.FlashStart + c.FlashSize
}

// RAMEnd is the first address past the end of SRAM
func (c Config) RAMEnd() uint32 {
	return c.RAMStart + c.RAMSize
}

// Configuration errors
var (
	ErrClockFrequency = errors.New("unsupported clock frequency")
	ErrPLLMultiplier  = errors.New("PLL multiplier out of range")
	ErrAppStart       = errors.New("application start outside flash")
	ErrMagicKey       = errors.New("magic key must be non-zero")
)

// PLLMultiplier returns the PLL multiplication factor needed to reach
// ClockFreq from the selected reference. HSI feeds the PLL through a
// fixed /2 divider.
func (c Config) PLLMultiplier() uint32 {
	if c.ClockRefInternal {
		return (c.ClockFreq / HSIFrequency) * 2
	}
	if c.ClockRefFreq == 0 {
		return 0
	}
	return c.ClockFreq / c.ClockRefFreq
}

// Validate checks the configuration against the limits of the chip
func (c Config) Validate() error {
	if c.ClockFreq == 0 || c.ClockFreq > 72000000 {
		return fmt.Errorf("%w: %d Hz", ErrClockFrequency, c.ClockFreq)
	}
	if !c.ClockRefInternal && c.ClockRefFreq == 0 {
		return fmt.Errorf("%w: no external reference frequency", ErrClockFrequency)
	}
	// PLLMUL is a 4-bit field encoding x2..x16
	if mul := c.PLLMultiplier(); mul < 2 || mul > 16 {
		return fmt.Errorf("%w: x%d", ErrPLLMultiplier, mul)
	}
	if c.ApplicationStart < c.FlashStart || c.ApplicationStart >= c.FlashEnd() {
		return fmt.Errorf("%w: 0x%08X", ErrAppStart, c.ApplicationStart)
	}
	if c.MagicKey == 0 {
		return ErrMagicKey
	}
	return nil
}

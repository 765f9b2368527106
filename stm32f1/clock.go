package stm32f1

import (
	"canboot/core"
	"canboot/mmio"
)

// ClockDomain is the bus whose RCC enable register gates a peripheral
type ClockDomain uint8

const (
	DomainAPB1 ClockDomain = iota
	DomainAPB2
	DomainAHB
)

// DomainOf classifies a peripheral base address. Everything below the
// APB2 window is APB1 and everything from the AHB window up is AHB.
func DomainOf(periphBase uint32) ClockDomain {
	switch {
	case periphBase < APB2PeriphBase:
		return DomainAPB1
	case periphBase < AHBPeriphBase:
		return DomainAPB2
	default:
		return DomainAHB
	}
}

// Base returns the first peripheral address of the domain
func (d ClockDomain) Base() uint32 {
	switch d {
	case DomainAPB1:
		return APB1PeriphBase
	case DomainAPB2:
		return APB2PeriphBase
	default:
		return AHBPeriphBase
	}
}

// BlockSize returns the address stride between peripherals of the domain
func (d ClockDomain) BlockSize() uint32 {
	return PeriphBlockSize
}

// EnableRegister returns the RCC clock-enable register of the domain
func (d ClockDomain) EnableRegister() mmio.Reg32 {
	switch d {
	case DomainAPB1:
		return RCC.APB1ENR
	case DomainAPB2:
		return RCC.APB2ENR
	default:
		return RCC.AHBENR
	}
}

// Bit returns the enable-register bit of the peripheral at periphBase
func (d ClockDomain) Bit(periphBase uint32) uint32 {
	pos := (periphBase - d.Base()) / d.BlockSize()
	return 1 << pos
}

func (d ClockDomain) String() string {
	switch d {
	case DomainAPB1:
		return "APB1"
	case DomainAPB2:
		return "APB2"
	default:
		return "AHB"
	}
}

// chipConfig is the build configuration the chip was started with
var chipConfig = core.DefaultConfig()

// Configure records the build configuration used by frequency queries
func Configure(cfg core.Config) {
	chipConfig = cfg
}

// EnablePClock enables the bus clock of a peripheral
func EnablePClock(periphBase uint32) {
	d := DomainOf(periphBase)
	en := d.EnableRegister()
	en.SetBits(d.Bit(periphBase))
	// Read back so the posted write lands before the peripheral is touched
	en.Get()
}

// IsEnabledPClock reports whether the bus clock of a peripheral is on
func IsEnabledPClock(periphBase uint32) bool {
	d := DomainOf(periphBase)
	return d.EnableRegister().HasBits(d.Bit(periphBase))
}

// PClockFrequency returns the bus clock frequency of a peripheral.
// Both APB prescalers are fixed at /2 by ClockSetup.
func PClockFrequency(periphBase uint32) uint32 {
	return chipConfig.PeripheralFrequency()
}

// resetPeripheralClocks restores the three enable registers to their
// post-reset values
func resetPeripheralClocks() {
	RCC.AHBENR.Set(RCC_AHBENR_RESET)
	RCC.APB1ENR.Set(0)
	RCC.APB2ENR.Set(0)
}

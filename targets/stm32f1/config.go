//go:build stm32f1

package main

import (
	"canboot/core"
	"canboot/stm32f1"
)

// buildConfig is the bootloader's build-time configuration: a 72MHz
// STM32F103 on an 8MHz crystal with the application after 8KiB of
// bootloader.
var buildConfig = core.Config{
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

// CAN pins on the secondary (PB8/PB9) mapping
var (
	canRx = stm32f1.GPIO('B', 8)
	canTx = stm32f1.GPIO('B', 9)
)

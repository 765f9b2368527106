package stm32f1

import (
	"canboot/core"
	"canboot/mmio"
)

// CheckApplication reads the initial stack pointer and reset handler of
// the application vector table and checks them against the memory
// layout. JumpToApplication itself does no checking.
func CheckApplication(cfg core.Config) error {
	sp := mmio.Reg32(cfg.ApplicationStart).Get()
	reset := mmio.Reg32(cfg.ApplicationStart + 4).Get()
	return core.CheckVectorTable(cfg, sp, reset)
}

// JumpToApplication hands the chip to the application whose vector table
// is at start. Peripheral clocks go back to their reset state, VTOR and
// MSP are loaded from the application and its reset handler is entered.
// It does not return.
func JumpToApplication(start uint32) {
	reset := mmio.Reg32(start + 4).Get()

	resetPeripheralClocks()

	SCB.VTOR.Set(start)
	launch(mmio.Reg32(start).Get(), reset)
}

package stm32f1

import (
	"testing"

	"canboot/core"
	"canboot/mmio"
)

// resetChip clears the simulated memory map and installs hooks that
// model the hardware the boot path waits on
func resetChip(t *testing.T) {
	t.Helper()
	mmio.Reset()
	afioRemap.Init()
	Configure(core.DefaultConfig())
	Launcher = nil
	t.Cleanup(func() {
		Launcher = nil
		core.SetDebugWriter(nil)
		core.SetDebugEnabled(false)
	})

	// Oscillators and the PLL report ready as soon as they are switched on
	mmio.Hook(RCC.CR.Addr(), func(old, written uint32) uint32 {
		written &^= RCC_CR_HSIRDY | RCC_CR_HSERDY | RCC_CR_PLLRDY
		if written&RCC_CR_HSION != 0 {
			written |= RCC_CR_HSIRDY
		}
		if written&RCC_CR_HSEON != 0 {
			written |= RCC_CR_HSERDY
		}
		if written&RCC_CR_PLLON != 0 {
			written |= RCC_CR_PLLRDY
		}
		return written
	})

	// SWS follows SW
	mmio.Hook(RCC.CFGR.Addr(), func(old, written uint32) uint32 {
		sw := written & RCC_CFGR_SW_Msk
		return written&^RCC_CFGR_SWS_Msk | sw<<RCC_CFGR_SWS_Pos
	})

	// Backup registers are 16 bits wide and ignore writes unless the
	// domain is clocked and DBP is set
	mmio.Hook(BKP.DR4.Addr(), func(old, written uint32) uint32 {
		if !RCC.APB1ENR.HasBits(RCC_APB1ENR_BKPEN) || !PWR.CR.HasBits(PWR_CR_DBP) {
			t.Errorf("BKP_DR4 written while write protected")
			return old
		}
		if !core.InterruptsDisabled() {
			t.Errorf("BKP_DR4 written with interrupts enabled")
		}
		return written & 0xFFFF
	})
}

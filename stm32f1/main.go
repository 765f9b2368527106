package stm32f1

import "canboot/core"

// Main brings the chip up and runs handler, the bootloader proper. It is
// called once from the target's main and does not return while handler
// keeps running.
func Main(cfg core.Config, handler func()) {
	Configure(cfg)

	// Restore VTOR after SystemInit moved it to the start of flash
	SystemInit()
	SCB.VTOR.Set(cfg.FlashStart)
	afioRemap.Init()

	resetPeripheralClocks()

	setup := NewClockSetup(cfg)
	setup.Run()

	// Disable JTAG to free PA15, PB3, PB4
	EnablePClock(AFIOBase)
	RemapUpdate(AFIO_MAPR_SWJ_CFG_Msk, AFIO_MAPR_SWJ_CFG_JTAGDISABLE)

	core.Debug("boot: chip ready")
	handler()
}

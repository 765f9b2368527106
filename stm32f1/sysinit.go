package stm32f1

// SystemInit returns the clock tree to its reset configuration: SYSCLK
// on HSI, PLL and HSE off, prescalers at /1 and clock interrupts masked.
// The vector table is pointed at the start of flash.
func SystemInit() {
	RCC.CR.SetBits(RCC_CR_HSION)

	// SW, HPRE, PPRE1, PPRE2, ADCPRE and MCO
	RCC.CFGR.Set(RCC.CFGR.Get() & 0xF8FF0000)

	RCC.CR.ClearBits(RCC_CR_HSEON | RCC_CR_CSSON | RCC_CR_PLLON)
	RCC.CR.ClearBits(RCC_CR_HSEBYP)

	// PLLSRC, PLLXTPRE, PLLMUL and USBPRE
	RCC.CFGR.Set(RCC.CFGR.Get() & 0xFF80FFFF)

	RCC.CIR.Set(RCC_CIR_RESET)

	SCB.VTOR.Set(FlashBase)
}

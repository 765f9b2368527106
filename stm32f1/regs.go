// Package stm32f1 is the chip-support layer of the bootloader for the
// STM32F1 family: clock tree bring-up, peripheral clocks, GPIO and AFIO
// remapping, the backup-register boot key and the application handoff.
package stm32f1

import "canboot/mmio"

// Memory map (RM0008 section 3.3). Register block addresses and field
// positions come from device/stm32 on TinyGo builds (regs_tinygo.go)
// and from the literal table in regs_go.go otherwise.
const (
	FlashBase = 0x08000000
	SRAMBase  = 0x20000000

	PeriphBase     = 0x40000000
	APB1PeriphBase = PeriphBase
	APB2PeriphBase = PeriphBase + 0x10000
	AHBPeriphBase  = PeriphBase + 0x20000

	CAN1Base = APB1PeriphBase + 0x6400

	// Peripheral register blocks are 1KiB apart on every bus
	PeriphBlockSize = 0x400

	// GPIO ports A..G
	GPIOPortCount = 7
)

// Field values and reset values
const (
	RCC_CFGR_SW_PLL      = 0x2 << RCC_CFGR_SW_Pos
	RCC_CFGR_SWS_PLL     = 0x2 << RCC_CFGR_SWS_Pos
	RCC_CFGR_PPRE1_DIV2  = 0x4 << RCC_CFGR_PPRE1_Pos
	RCC_CFGR_PPRE2_DIV2  = 0x4 << RCC_CFGR_PPRE2_Pos
	RCC_CFGR_ADCPRE_DIV8 = 0x3 << RCC_CFGR_ADCPRE_Pos

	// Clock interrupts disabled, all ready flags cleared
	RCC_CIR_RESET = 0x009F0000

	// SRAM and FLITF clocks stay on after reset
	RCC_AHBENR_RESET = 0x14

	AFIO_MAPR_CAN_REMAP_REMAP2    = 0x2 << AFIO_MAPR_CAN_REMAP_Pos
	AFIO_MAPR_SWJ_CFG_JTAGDISABLE = 0x2 << AFIO_MAPR_SWJ_CFG_Pos
	AFIO_MAPR_SWJ_CFG_DISABLE     = 0x4 << AFIO_MAPR_SWJ_CFG_Pos
)

// RCCRegs is the reset and clock control block
type RCCRegs struct {
	CR       mmio.Reg32
	CFGR     mmio.Reg32
	CIR      mmio.Reg32
	APB2RSTR mmio.Reg32
	APB1RSTR mmio.Reg32
	AHBENR   mmio.Reg32
	APB2ENR  mmio.Reg32
	APB1ENR  mmio.Reg32
	BDCR     mmio.Reg32
	CSR      mmio.Reg32
}

// FlashRegs is the flash interface block
type FlashRegs struct {
	ACR mmio.Reg32
}

// PWRRegs is the power control block
type PWRRegs struct {
	CR  mmio.Reg32
	CSR mmio.Reg32
}

// BKPRegs holds the 16-bit backup data registers used by the bootloader
type BKPRegs struct {
	DR1 mmio.Reg32
	DR2 mmio.Reg32
	DR3 mmio.Reg32
	DR4 mmio.Reg32
}

// AFIORegs is the alternate-function I/O block
type AFIORegs struct {
	EVCR mmio.Reg32
	MAPR mmio.Reg32
}

// SCBRegs is the subset of the Cortex-M3 system control block in use
type SCBRegs struct {
	VTOR mmio.Reg32
}

// GPIORegs is one GPIO port
type GPIORegs struct {
	CRL  mmio.Reg32
	CRH  mmio.Reg32
	IDR  mmio.Reg32
	ODR  mmio.Reg32
	BSRR mmio.Reg32
	BRR  mmio.Reg32
	LCKR mmio.Reg32
}

// gpioBase returns the base address of port (0 = A)
func gpioBase(port uint8) uint32 {
	return uint32(GPIOABase) + uint32(port)*PeriphBlockSize
}

// GPIOPort returns the register block of port (0 = A)
func GPIOPort(port uint8) GPIORegs {
	base := mmio.Reg32(gpioBase(port))
	return GPIORegs{
		CRL:  base + 0x00,
		CRH:  base + 0x04,
		IDR:  base + 0x08,
		ODR:  base + 0x0C,
		BSRR: base + 0x10,
		BRR:  base + 0x14,
		LCKR: base + 0x18,
	}
}

//go:build tinygo

package stm32f1

import (
	"device/arm"
	"device/stm32"
	"unsafe"

	"canboot/mmio"
)

// Field positions and single-bit masks from the generated device file.
// device/stm32 masks are shifted; PLLMUL is kept unshifted here.
const (
	RCC_CR_HSION  = stm32.RCC_CR_HSION
	RCC_CR_HSIRDY = stm32.RCC_CR_HSIRDY
	RCC_CR_HSEON  = stm32.RCC_CR_HSEON
	RCC_CR_HSERDY = stm32.RCC_CR_HSERDY
	RCC_CR_HSEBYP = stm32.RCC_CR_HSEBYP
	RCC_CR_CSSON  = stm32.RCC_CR_CSSON
	RCC_CR_PLLON  = stm32.RCC_CR_PLLON
	RCC_CR_PLLRDY = stm32.RCC_CR_PLLRDY

	RCC_CFGR_SW_Pos     = stm32.RCC_CFGR_SW_Pos
	RCC_CFGR_SW_Msk     = stm32.RCC_CFGR_SW_Msk
	RCC_CFGR_SWS_Pos    = stm32.RCC_CFGR_SWS_Pos
	RCC_CFGR_SWS_Msk    = stm32.RCC_CFGR_SWS_Msk
	RCC_CFGR_PPRE1_Pos  = stm32.RCC_CFGR_PPRE1_Pos
	RCC_CFGR_PPRE2_Pos  = stm32.RCC_CFGR_PPRE2_Pos
	RCC_CFGR_ADCPRE_Pos = stm32.RCC_CFGR_ADCPRE_Pos
	RCC_CFGR_PLLSRC_Pos = stm32.RCC_CFGR_PLLSRC_Pos
	RCC_CFGR_PLLMUL_Pos = stm32.RCC_CFGR_PLLMUL_Pos
	RCC_CFGR_PLLMUL_Msk = stm32.RCC_CFGR_PLLMUL_Msk >> stm32.RCC_CFGR_PLLMUL_Pos

	RCC_APB1ENR_BKPEN = stm32.RCC_APB1ENR_BKPEN
	RCC_APB1ENR_PWREN = stm32.RCC_APB1ENR_PWREN

	FLASH_ACR_LATENCY_Pos = stm32.FLASH_ACR_LATENCY_Pos
	FLASH_ACR_PRFTBE      = stm32.FLASH_ACR_PRFTBE

	PWR_CR_DBP = stm32.PWR_CR_DBP

	AFIO_MAPR_CAN_REMAP_Pos = stm32.AFIO_MAPR_CAN_REMAP_Pos
	AFIO_MAPR_CAN_REMAP_Msk = stm32.AFIO_MAPR_CAN_REMAP_Msk
	AFIO_MAPR_SWJ_CFG_Pos   = stm32.AFIO_MAPR_SWJ_CFG_Pos
	AFIO_MAPR_SWJ_CFG_Msk   = stm32.AFIO_MAPR_SWJ_CFG_Msk
)

// regAt wraps the address of a device register. Taking the address
// keeps the BKP data registers usable whatever width the device file
// gives them.
func regAt(p unsafe.Pointer) mmio.Reg32 {
	return mmio.Reg32(uintptr(p))
}

var (
	AFIOBase  = uint32(uintptr(unsafe.Pointer(stm32.AFIO)))
	GPIOABase = uint32(uintptr(unsafe.Pointer(stm32.GPIOA)))
	BKPBase   = uint32(uintptr(unsafe.Pointer(stm32.BKP)))
	PWRBase   = uint32(uintptr(unsafe.Pointer(stm32.PWR)))

	RCC = RCCRegs{
		CR:       regAt(unsafe.Pointer(&stm32.RCC.CR)),
		CFGR:     regAt(unsafe.Pointer(&stm32.RCC.CFGR)),
		CIR:      regAt(unsafe.Pointer(&stm32.RCC.CIR)),
		APB2RSTR: regAt(unsafe.Pointer(&stm32.RCC.APB2RSTR)),
		APB1RSTR: regAt(unsafe.Pointer(&stm32.RCC.APB1RSTR)),
		AHBENR:   regAt(unsafe.Pointer(&stm32.RCC.AHBENR)),
		APB2ENR:  regAt(unsafe.Pointer(&stm32.RCC.APB2ENR)),
		APB1ENR:  regAt(unsafe.Pointer(&stm32.RCC.APB1ENR)),
		BDCR:     regAt(unsafe.Pointer(&stm32.RCC.BDCR)),
		CSR:      regAt(unsafe.Pointer(&stm32.RCC.CSR)),
	}
	FLASH = FlashRegs{ACR: regAt(unsafe.Pointer(&stm32.FLASH.ACR))}
	PWR   = PWRRegs{
		CR:  regAt(unsafe.Pointer(&stm32.PWR.CR)),
		CSR: regAt(unsafe.Pointer(&stm32.PWR.CSR)),
	}
	BKP = BKPRegs{
		DR1: regAt(unsafe.Pointer(&stm32.BKP.DR1)),
		DR2: regAt(unsafe.Pointer(&stm32.BKP.DR2)),
		DR3: regAt(unsafe.Pointer(&stm32.BKP.DR3)),
		DR4: regAt(unsafe.Pointer(&stm32.BKP.DR4)),
	}
	AFIO = AFIORegs{
		EVCR: regAt(unsafe.Pointer(&stm32.AFIO.EVCR)),
		MAPR: regAt(unsafe.Pointer(&stm32.AFIO.MAPR)),
	}
	SCB = SCBRegs{VTOR: regAt(unsafe.Pointer(&arm.SCB.VTOR))}
)

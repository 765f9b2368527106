//go:build !tinygo

package stm32f1

// Register map from RM0008 for the simulated memory map (for testing)

const (
	BKPBase = APB1PeriphBase + 0x6C00
	PWRBase = APB1PeriphBase + 0x7000

	AFIOBase  = APB2PeriphBase + 0x0000
	GPIOABase = APB2PeriphBase + 0x0800

	RCCBase       = AHBPeriphBase + 0x1000
	FlashRegsBase = AHBPeriphBase + 0x2000

	SCBBase = 0xE000ED00
)

const (
	RCC_CR_HSION  = 1 << 0
	RCC_CR_HSIRDY = 1 << 1
	RCC_CR_HSEON  = 1 << 16
	RCC_CR_HSERDY = 1 << 17
	RCC_CR_HSEBYP = 1 << 18
	RCC_CR_CSSON  = 1 << 19
	RCC_CR_PLLON  = 1 << 24
	RCC_CR_PLLRDY = 1 << 25

	RCC_CFGR_SW_Pos     = 0
	RCC_CFGR_SW_Msk     = 0x3 << RCC_CFGR_SW_Pos
	RCC_CFGR_SWS_Pos    = 2
	RCC_CFGR_SWS_Msk    = 0x3 << RCC_CFGR_SWS_Pos
	RCC_CFGR_PPRE1_Pos  = 8
	RCC_CFGR_PPRE2_Pos  = 11
	RCC_CFGR_ADCPRE_Pos = 14
	RCC_CFGR_PLLSRC_Pos = 16
	RCC_CFGR_PLLMUL_Pos = 18
	RCC_CFGR_PLLMUL_Msk = 0xF // unshifted

	RCC_APB1ENR_BKPEN = 1 << 27
	RCC_APB1ENR_PWREN = 1 << 28

	FLASH_ACR_LATENCY_Pos = 0
	FLASH_ACR_PRFTBE      = 1 << 4

	PWR_CR_DBP = 1 << 8

	AFIO_MAPR_CAN_REMAP_Pos = 13
	AFIO_MAPR_CAN_REMAP_Msk = 0x3 << AFIO_MAPR_CAN_REMAP_Pos
	AFIO_MAPR_SWJ_CFG_Pos   = 24
	AFIO_MAPR_SWJ_CFG_Msk   = 0x7 << AFIO_MAPR_SWJ_CFG_Pos
)

var (
	RCC = RCCRegs{
		CR:       RCCBase + 0x00,
		CFGR:     RCCBase + 0x04,
		CIR:      RCCBase + 0x08,
		APB2RSTR: RCCBase + 0x0C,
		APB1RSTR: RCCBase + 0x10,
		AHBENR:   RCCBase + 0x14,
		APB2ENR:  RCCBase + 0x18,
		APB1ENR:  RCCBase + 0x1C,
		BDCR:     RCCBase + 0x20,
		CSR:      RCCBase + 0x24,
	}
	FLASH = FlashRegs{ACR: FlashRegsBase + 0x00}
	PWR   = PWRRegs{CR: PWRBase + 0x00, CSR: PWRBase + 0x04}
	BKP   = BKPRegs{
		DR1: BKPBase + 0x04,
		DR2: BKPBase + 0x08,
		DR3: BKPBase + 0x0C,
		DR4: BKPBase + 0x10,
	}
	AFIO = AFIORegs{EVCR: AFIOBase + 0x00, MAPR: AFIOBase + 0x04}
	SCB  = SCBRegs{VTOR: SCBBase + 0x08}
)

package stm32f1

import "canboot/core"

// ClockState is a step of the PLL bring-up sequence
type ClockState uint8

const (
	ClockIdle ClockState = iota
	ClockOscillatorSelect
	ClockPLLConfigure
	ClockFlashLatencySet
	ClockPLLEnable
	ClockWaitLock
	ClockSwitchToPLL
	ClockWaitSwitch
	ClockDone
)

var clockStateNames = [...]string{
	ClockIdle:             "idle",
	ClockOscillatorSelect: "oscillator-select",
	ClockPLLConfigure:     "pll-configure",
	ClockFlashLatencySet:  "flash-latency",
	ClockPLLEnable:        "pll-enable",
	ClockWaitLock:         "wait-lock",
	ClockSwitchToPLL:      "switch-to-pll",
	ClockWaitSwitch:       "wait-switch",
	ClockDone:             "done",
}

func (s ClockState) String() string {
	if int(s) < len(clockStateNames) {
		return clockStateNames[s]
	}
	return "unknown"
}

// ClockSetup brings SYSCLK from HSI to the configured frequency via the
// PLL. It runs once at boot; the wait states spin without a timeout
// since there is no usable clock to fall back on.
type ClockSetup struct {
	cfg   core.Config
	state ClockState
	cfgr  uint32
}

// NewClockSetup returns a sequence in the Idle state
func NewClockSetup(cfg core.Config) ClockSetup {
	return ClockSetup{cfg: cfg}
}

// State returns the last completed step
func (c *ClockSetup) State() ClockState {
	return c.state
}

// CFGR returns the clock configuration word computed so far
func (c *ClockSetup) CFGR() uint32 {
	return c.cfgr
}

// Step performs the next step of the sequence and returns the new state.
// Stepping a finished sequence does nothing.
func (c *ClockSetup) Step() ClockState {
	switch c.state {
	case ClockIdle:
		c.state = ClockOscillatorSelect
		c.selectOscillator()
	case ClockOscillatorSelect:
		c.state = ClockPLLConfigure
		c.cfgr |= RCC_CFGR_PPRE1_DIV2 | RCC_CFGR_PPRE2_DIV2 | RCC_CFGR_ADCPRE_DIV8
		RCC.CFGR.Set(c.cfgr)
	case ClockPLLConfigure:
		// Two wait states before SYSCLK goes above 48MHz
		c.state = ClockFlashLatencySet
		FLASH.ACR.Set(2<<FLASH_ACR_LATENCY_Pos | FLASH_ACR_PRFTBE)
	case ClockFlashLatencySet:
		c.state = ClockPLLEnable
		RCC.CR.SetBits(RCC_CR_PLLON)
	case ClockPLLEnable:
		c.state = ClockWaitLock
		for !RCC.CR.HasBits(RCC_CR_PLLRDY) {
		}
	case ClockWaitLock:
		c.state = ClockSwitchToPLL
		RCC.CFGR.Set(c.cfgr | RCC_CFGR_SW_PLL)
	case ClockSwitchToPLL:
		c.state = ClockWaitSwitch
		for RCC.CFGR.Get()&RCC_CFGR_SWS_Msk != RCC_CFGR_SWS_PLL {
		}
	case ClockWaitSwitch:
		c.state = ClockDone
	default:
		return c.state
	}
	if core.IsDebugEnabled() {
		core.Debug("clock: " + c.state.String())
	}
	return c.state
}

// Run steps the sequence until SYSCLK runs from the PLL
func (c *ClockSetup) Run() {
	for c.Step() != ClockDone {
	}
}

// selectOscillator picks the PLL source and multiplier. HSI reaches the
// PLL through a fixed /2 divider. PLLMUL encodes xN as N-2.
func (c *ClockSetup) selectOscillator() {
	var src, mul uint32
	if c.cfg.ClockRefInternal {
		mul = (c.cfg.ClockFreq / core.HSIFrequency) * 2
	} else {
		mul = c.cfg.ClockFreq / c.cfg.ClockRefFreq
		src = 1
		RCC.CR.SetBits(RCC_CR_HSEON)
	}
	c.cfgr = src<<RCC_CFGR_PLLSRC_Pos |
		((mul-2)&RCC_CFGR_PLLMUL_Msk)<<RCC_CFGR_PLLMUL_Pos
}

package stm32f1

// Pin is a GPIO pin encoded as port*16 + number
type Pin uint8

// GPIO returns the pin number of a port letter and pin 0-15. Only ports
// 'A'..'G' exist; other letters address unrelated APB2 peripherals.
func GPIO(port byte, num uint8) Pin {
	return Pin((port-'A')*16 + num%16)
}

// Port returns the port index (0 = A)
func (p Pin) Port() uint8 {
	return uint8(p) / 16
}

// Num returns the pin's bit position within its port
func (p Pin) Num() uint8 {
	return uint8(p) % 16
}

func (p Pin) String() string {
	n := p.Num()
	if n < 10 {
		return string([]byte{'P', 'A' + p.Port(), '0' + n})
	}
	return string([]byte{'P', 'A' + p.Port(), '1', '0' + n - 10})
}

// ModeKind is the basic function of a pin
type ModeKind uint8

const (
	KindInput ModeKind = iota
	KindOutput
	KindFunction
	KindAnalog
)

// Mode is a pin mode: kind in bits 0-3, alternate function selector in
// bits 4-7, open-drain flag in bit 8
type Mode uint16

const modeOpenDrain Mode = 0x100

// Pin modes
const (
	ModeInput           = Mode(KindInput)
	ModeOutput          = Mode(KindOutput)
	ModeOutputOpenDrain = ModeOutput | modeOpenDrain
	ModeAnalog          = Mode(KindAnalog)
)

// FunctionCAN is the alternate function selector of the CAN pins
const FunctionCAN = 9

// AltFunction returns a push-pull alternate function mode
func AltFunction(fn uint8) Mode {
	return Mode(KindFunction) | Mode(fn&0xF)<<4
}

// AltFunctionOpenDrain returns an open-drain alternate function mode
func AltFunctionOpenDrain(fn uint8) Mode {
	return AltFunction(fn) | modeOpenDrain
}

// Kind returns the basic function of the mode
func (m Mode) Kind() ModeKind {
	return ModeKind(m & 0xF)
}

// OpenDrain reports whether the output stage is open-drain
func (m Mode) OpenDrain() bool {
	return m&modeOpenDrain != 0
}

// Function returns the alternate function selector
func (m Mode) Function() uint8 {
	return uint8(m>>4) & 0xF
}

// Pull selects the input pull resistor
type Pull int8

const (
	PullNone Pull = 0
	PullUp   Pull = 1
	PullDown Pull = -1
)

// CNF/MODE nibbles of GPIOx_CRL/CRH
const (
	pinCfgAnalog        = 0x0
	pinCfgOutput        = 0x1 // push-pull, 50MHz
	pinCfgInputFloating = 0x4
	pinCfgOutputOD      = 0x5 // open-drain, 50MHz
	pinCfgInputPull     = 0x8
	pinCfgFunction      = 0x9 // AF push-pull, 50MHz
	pinCfgFunctionOD    = 0xD // AF open-drain, 50MHz
)

// pinConfig maps a mode and pull to the 4-bit port configuration code.
// Modes outside the documented set fall through to the alternate
// function codes.
func pinConfig(mode Mode, pull Pull) uint32 {
	switch mode {
	case ModeInput:
		if pull != PullNone {
			return pinCfgInputPull
		}
		return pinCfgInputFloating
	case ModeOutput:
		return pinCfgOutput
	case ModeOutputOpenDrain:
		return pinCfgOutputOD
	case ModeAnalog:
		return pinCfgAnalog
	}
	if mode.OpenDrain() {
		return pinCfgFunctionOD
	}
	if pull > 0 {
		// AF inputs are configured like plain inputs on this family
		return pinCfgInputPull
	}
	return pinCfgFunction
}

// GpioClockEnable enables the APB2 clock of a GPIO port
func GpioClockEnable(port uint8) {
	pos := (gpioBase(port) - APB2PeriphBase) / PeriphBlockSize
	RCC.APB2ENR.SetBits(1 << pos)
	RCC.APB2ENR.Get()
}

// GpioPeripheral sets the mode and pull of a pin, enabling its port
// clock and applying the AFIO remaps the pin/function needs
func GpioPeripheral(pin Pin, mode Mode, pull Pull) {
	regs := GPIOPort(pin.Port())
	GpioClockEnable(pin.Port())

	pos := pin.Num()
	shift := uint32(pos%8) * 4
	msk := uint32(0xF) << shift
	cfg := pinConfig(mode, pull)
	cr := regs.CRL
	if pos&0x8 != 0 {
		cr = regs.CRH
	}
	cr.Set(cr.Get()&^msk | cfg<<shift)

	if pull > 0 {
		regs.BSRR.Set(1 << pos)
	} else if pull < 0 {
		regs.BSRR.Set(1 << (pos + 16))
	}

	applyRemap(pin, mode)
}

// applyRemap emulates STM32F4-style pin functions on top of the F1's
// AFIO remap scheme. Add more mappings here as boards need them.
func applyRemap(pin Pin, mode Mode) {
	switch pin {
	case GPIO('A', 13), GPIO('A', 14):
		// Release PA13/PA14 from SWD
		RemapUpdate(AFIO_MAPR_SWJ_CFG_Msk, AFIO_MAPR_SWJ_CFG_DISABLE)
	case GPIO('B', 8), GPIO('B', 9):
		if mode.Kind() == KindFunction && mode.Function() == FunctionCAN {
			RemapUpdate(AFIO_MAPR_CAN_REMAP_Msk, AFIO_MAPR_CAN_REMAP_REMAP2)
		}
	}
}

// GpioWrite drives an output pin high or low through BSRR
func GpioWrite(pin Pin, value bool) {
	regs := GPIOPort(pin.Port())
	if value {
		regs.BSRR.Set(1 << pin.Num())
	} else {
		regs.BSRR.Set(1 << (pin.Num() + 16))
	}
}

// GpioRead returns the input level of a pin
func GpioRead(pin Pin) bool {
	return GPIOPort(pin.Port()).IDR.HasBits(1 << pin.Num())
}

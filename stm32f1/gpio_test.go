package stm32f1

import (
	"testing"

	"canboot/mmio"
)

func TestPinEncoding(t *testing.T) {
	testCases := []struct {
		port byte
		num  uint8
		pin  Pin
		name string
	}{
		{'A', 0, 0, "PA0"},
		{'A', 13, 13, "PA13"},
		{'B', 8, 24, "PB8"},
		{'C', 15, 47, "PC15"},
		{'G', 1, 97, "PG1"},
	}

	for _, tc := range testCases {
		p := GPIO(tc.port, tc.num)
		if p != tc.pin {
			t.Errorf("GPIO('%c', %d): expected %d, got %d", tc.port, tc.num, tc.pin, p)
		}
		if p.Port() != tc.port-'A' || p.Num() != tc.num {
			t.Errorf("%s: port=%d num=%d", tc.name, p.Port(), p.Num())
		}
		if p.String() != tc.name {
			t.Errorf("Expected name %s, got %s", tc.name, p.String())
		}
	}
}

func TestModeEncoding(t *testing.T) {
	m := AltFunctionOpenDrain(FunctionCAN)
	if m.Kind() != KindFunction || !m.OpenDrain() || m.Function() != FunctionCAN {
		t.Errorf("AltFunctionOpenDrain(9): kind=%d od=%v fn=%d", m.Kind(), m.OpenDrain(), m.Function())
	}
	if ModeOutputOpenDrain.Kind() != KindOutput || !ModeOutputOpenDrain.OpenDrain() {
		t.Error("ModeOutputOpenDrain should be an open-drain output")
	}
	if ModeInput.OpenDrain() || ModeAnalog.Kind() != KindAnalog {
		t.Error("plain mode encoding broken")
	}
}

func TestGpioPeripheralConfig(t *testing.T) {
	testCases := []struct {
		name string
		mode Mode
		pull Pull
		cfg  uint32
	}{
		{"input floating", ModeInput, PullNone, 0x4},
		{"input pull-up", ModeInput, PullUp, 0x8},
		{"input pull-down", ModeInput, PullDown, 0x8},
		{"output", ModeOutput, PullNone, 0x1},
		{"output open-drain", ModeOutputOpenDrain, PullNone, 0x5},
		{"analog", ModeAnalog, PullNone, 0x0},
		{"af open-drain", AltFunctionOpenDrain(4), PullNone, 0xD},
		{"af input pull-up", AltFunction(4), PullUp, 0x8},
		{"af push-pull", AltFunction(4), PullNone, 0x9},
		{"af pull-down", AltFunction(4), PullDown, 0x9},
	}

	const pattern = 0xCCCCCCCC
	port := GPIOPort(2)

	for _, tc := range testCases {
		for num := uint8(0); num < 16; num++ {
			resetChip(t)
			mmio.Poke(port.CRL.Addr(), pattern)
			mmio.Poke(port.CRH.Addr(), pattern)

			pin := GPIO('C', num)
			GpioPeripheral(pin, tc.mode, tc.pull)

			shift := uint32(num%8) * 4
			want := uint32(pattern)&^(0xF<<shift) | tc.cfg<<shift
			written, untouched := port.CRL, port.CRH
			if num >= 8 {
				written, untouched = port.CRH, port.CRL
			}
			if got := written.Get(); got != want {
				t.Errorf("%s %s: expected 0x%08X, got 0x%08X", tc.name, pin, want, got)
			}
			if got := untouched.Get(); got != pattern {
				t.Errorf("%s %s: other half register changed to 0x%08X", tc.name, pin, got)
			}
			if len(mmio.WritesTo(untouched.Addr())) != 0 {
				t.Errorf("%s %s: other half register written", tc.name, pin)
			}

			bsrr := mmio.WritesTo(port.BSRR.Addr())
			switch {
			case tc.pull > 0:
				if len(bsrr) != 1 || bsrr[0] != 1<<num {
					t.Errorf("%s %s: expected BSRR pull-up write, got %v", tc.name, pin, bsrr)
				}
			case tc.pull < 0:
				if len(bsrr) != 1 || bsrr[0] != 1<<(num+16) {
					t.Errorf("%s %s: expected BSRR pull-down write, got %v", tc.name, pin, bsrr)
				}
			default:
				if len(bsrr) != 0 {
					t.Errorf("%s %s: unexpected BSRR writes %v", tc.name, pin, bsrr)
				}
			}

			if !IsEnabledPClock(gpioBase(2)) {
				t.Errorf("%s %s: port clock not enabled", tc.name, pin)
			}
		}
	}
}

func TestGpioPeripheralCANRemap(t *testing.T) {
	resetChip(t)

	RemapUpdate(AFIO_MAPR_SWJ_CFG_Msk, AFIO_MAPR_SWJ_CFG_JTAGDISABLE)
	GpioPeripheral(GPIO('B', 8), AltFunction(FunctionCAN), PullNone)

	want := uint32(AFIO_MAPR_SWJ_CFG_JTAGDISABLE | AFIO_MAPR_CAN_REMAP_REMAP2)
	if got := RemapValue(); got != want {
		t.Errorf("Shadow: expected 0x%08X, got 0x%08X", want, got)
	}
	if got := mmio.Peek(AFIO.MAPR.Addr()); got != want {
		t.Errorf("AFIO_MAPR: expected 0x%08X, got 0x%08X", want, got)
	}

	GpioPeripheral(GPIO('B', 9), AltFunction(FunctionCAN), PullUp)
	if got := RemapValue(); got != want {
		t.Errorf("PB9 changed shadow to 0x%08X", got)
	}
}

func TestGpioPeripheralNoRemap(t *testing.T) {
	resetChip(t)

	// B8 with another function, and CAN function on a different pin
	GpioPeripheral(GPIO('B', 8), AltFunction(4), PullNone)
	GpioPeripheral(GPIO('A', 11), AltFunction(FunctionCAN), PullUp)
	GpioPeripheral(GPIO('B', 8), ModeOutput, PullNone)

	if got := RemapValue(); got != 0 {
		t.Errorf("Expected no remap, got 0x%08X", got)
	}
	if len(mmio.WritesTo(AFIO.MAPR.Addr())) != 0 {
		t.Error("AFIO_MAPR written without a remap")
	}
}

func TestGpioPeripheralSWDPins(t *testing.T) {
	for _, pin := range []Pin{GPIO('A', 13), GPIO('A', 14)} {
		resetChip(t)
		RemapUpdate(AFIO_MAPR_CAN_REMAP_Msk, AFIO_MAPR_CAN_REMAP_REMAP2)

		GpioPeripheral(pin, ModeOutput, PullNone)

		want := uint32(AFIO_MAPR_SWJ_CFG_DISABLE | AFIO_MAPR_CAN_REMAP_REMAP2)
		if got := RemapValue(); got != want {
			t.Errorf("%s: expected shadow 0x%08X, got 0x%08X", pin, want, got)
		}
		if got := mmio.Peek(AFIO.MAPR.Addr()); got != want {
			t.Errorf("%s: expected AFIO_MAPR 0x%08X, got 0x%08X", pin, want, got)
		}
	}
}

func TestGpioReadWrite(t *testing.T) {
	resetChip(t)
	pin := GPIO('C', 13)
	port := GPIOPort(2)

	GpioWrite(pin, true)
	GpioWrite(pin, false)
	writes := mmio.WritesTo(port.BSRR.Addr())
	if len(writes) != 2 || writes[0] != 1<<13 || writes[1] != 1<<29 {
		t.Errorf("Unexpected BSRR writes %v", writes)
	}

	mmio.Poke(port.IDR.Addr(), 1<<13)
	if !GpioRead(pin) {
		t.Error("Expected PC13 high")
	}
	if GpioRead(GPIO('C', 12)) {
		t.Error("Expected PC12 low")
	}
}

func TestGpioClockEnablePorts(t *testing.T) {
	// IOPAEN is APB2ENR bit 2, IOPGEN bit 8
	for port := uint8(0); port < GPIOPortCount; port++ {
		resetChip(t)
		GpioClockEnable(port)
		if got, want := RCC.APB2ENR.Get(), uint32(1)<<(port+2); got != want {
			t.Errorf("Port %c: expected APB2ENR 0x%X, got 0x%X", 'A'+port, want, got)
		}
	}
}

package stm32f1

import (
	"testing"

	"canboot/core"
	"canboot/mmio"
)

func TestMagicKeyConsumeOnce(t *testing.T) {
	resetChip(t)

	SetMagicKey(0x5AA5)
	if got := mmio.Peek(BKP.DR4.Addr()); got != 0x5AA5 {
		t.Fatalf("BKP_DR4 holds 0x%X after SetMagicKey", got)
	}

	if got := ReadMagicKey(); got != 0x5AA5 {
		t.Errorf("First read: expected 0x5AA5, got 0x%X", got)
	}
	if got := ReadMagicKey(); got != 0 {
		t.Errorf("Second read: expected 0, got 0x%X", got)
	}
}

func TestMagicKeyEmptyRead(t *testing.T) {
	resetChip(t)

	if got := ReadMagicKey(); got != 0 {
		t.Errorf("Expected 0, got 0x%X", got)
	}
	if writes := mmio.WritesTo(BKP.DR4.Addr()); len(writes) != 0 {
		t.Errorf("Empty read wrote BKP_DR4: %v", writes)
	}
	if writes := mmio.WritesTo(PWR.CR.Addr()); len(writes) != 0 {
		t.Errorf("Empty read touched write protection: %v", writes)
	}
}

func TestMagicKeyRestoresState(t *testing.T) {
	resetChip(t)
	EnablePClock(CAN1Base)

	SetMagicKey(0x1234)
	ReadMagicKey()

	if RCC.APB1ENR.HasBits(RCC_APB1ENR_PWREN | RCC_APB1ENR_BKPEN) {
		t.Errorf("Backup clocks left enabled: APB1ENR 0x%08X", RCC.APB1ENR.Get())
	}
	if !IsEnabledPClock(CAN1Base) {
		t.Error("Unrelated APB1 clock disabled")
	}
	if PWR.CR.HasBits(PWR_CR_DBP) {
		t.Error("Backup domain left writable")
	}
	if core.InterruptsDisabled() {
		t.Error("Interrupts left disabled")
	}
}

func TestMagicKeyTruncated(t *testing.T) {
	resetChip(t)

	// Only the low 16 bits of a backup register exist
	mmio.Poke(BKP.DR4.Addr(), 0xABCD)
	if got := ReadMagicKey(); got != 0xABCD {
		t.Errorf("Expected 0xABCD, got 0x%X", got)
	}
	if got := mmio.Peek(BKP.DR4.Addr()); got != 0 {
		t.Errorf("Key not cleared: 0x%X", got)
	}
}

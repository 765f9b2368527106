package mmio

import "testing"

func TestBitOperations(t *testing.T) {
	Reset()
	r := Reg32(0x40021000)

	r.Set(0x0000F0F0)
	r.SetBits(0x1)
	if got := r.Get(); got != 0xF0F1 {
		t.Errorf("SetBits: expected 0xF0F1, got 0x%X", got)
	}

	r.ClearBits(0xF000)
	if got := r.Get(); got != 0x00F1 {
		t.Errorf("ClearBits: expected 0x00F1, got 0x%X", got)
	}

	if !r.HasBits(0x10) {
		t.Error("HasBits(0x10) should be true")
	}
	if r.HasBits(0x100) {
		t.Error("HasBits(0x100) should be false")
	}

	r.ReplaceBits(0x7, 0xF, 18)
	if got := r.Field(0xF, 18); got != 0x7 {
		t.Errorf("Field after ReplaceBits: expected 7, got %d", got)
	}
	if got := r.Get() & 0xFF; got != 0xF1 {
		t.Errorf("ReplaceBits touched low byte: 0x%X", got)
	}
}

func TestHookAndLog(t *testing.T) {
	Reset()
	r := Reg32(0x40021000)

	// Ready bit follows the enable bit one position up
	Hook(r.Addr(), func(old, written uint32) uint32 {
		if written&(1<<24) != 0 {
			written |= 1 << 25
		}
		return written
	})

	r.SetBits(1 << 24)
	if !r.HasBits(1 << 25) {
		t.Error("hook did not set the ready bit")
	}

	writes := WritesTo(r.Addr())
	if len(writes) != 1 || writes[0] != 1<<24 {
		t.Errorf("expected one logged write of 0x%X, got %v", uint32(1<<24), writes)
	}

	Poke(0x40021004, 0xAA)
	if Peek(0x40021004) != 0xAA {
		t.Error("Poke/Peek mismatch")
	}
	if len(WritesTo(0x40021004)) != 0 {
		t.Error("Poke should not be logged")
	}

	ClearLog()
	if len(Writes()) != 0 || Reads(r.Addr()) != 0 {
		t.Error("ClearLog did not clear the access log")
	}
	if Peek(r.Addr())&(1<<25) == 0 {
		t.Error("ClearLog must keep memory")
	}
}

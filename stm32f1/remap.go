package stm32f1

import "canboot/mmio"

// RemapShadow mirrors AFIO_MAPR. The register mixes write-only and
// read/write bits, so every update rewrites the whole register from the
// shadow instead of reading it back.
type RemapShadow struct {
	value uint32
	reg   mmio.Reg32
}

// Init sets the shadow to the hardware reset value of the register
func (s *RemapShadow) Init() {
	s.value = 0
}

// Update clears the bits in mask, sets the bits in value and writes the
// full shadow to the register
func (s *RemapShadow) Update(mask, value uint32) {
	s.value = s.value&^mask | value&mask
	s.reg.Set(s.value)
}

// Value returns the last value written to the register
func (s *RemapShadow) Value() uint32 {
	return s.value
}

// afioRemap is the process-wide AFIO_MAPR shadow
var afioRemap = RemapShadow{reg: AFIO.MAPR}

// RemapUpdate applies a masked update to AFIO_MAPR through its shadow.
// The AFIO clock must be enabled.
func RemapUpdate(mask, value uint32) {
	afioRemap.Update(mask, value)
}

// RemapValue returns the current AFIO_MAPR shadow
func RemapValue() uint32 {
	return afioRemap.Value()
}

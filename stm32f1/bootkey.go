package stm32f1

import "canboot/core"

// The boot key lives in BKP_DR4, which keeps its value across a warm
// reset as long as VBAT is present. Both accessors mask interrupts for
// the whole sequence so nothing else can toggle PWR_CR.DBP meanwhile.

const backupClocks = RCC_APB1ENR_PWREN | RCC_APB1ENR_BKPEN

// SetMagicKey stores value in the backup domain
func SetMagicKey(value uint16) {
	state := core.DisableInterrupts()
	RCC.APB1ENR.SetBits(backupClocks)
	PWR.CR.SetBits(PWR_CR_DBP)
	BKP.DR4.Set(uint32(value))
	PWR.CR.ClearBits(PWR_CR_DBP)
	RCC.APB1ENR.ClearBits(backupClocks)
	core.RestoreInterrupts(state)
}

// ReadMagicKey returns the stored key and clears it, so a key is seen by
// exactly one boot. An empty key is left untouched.
func ReadMagicKey() uint16 {
	state := core.DisableInterrupts()
	RCC.APB1ENR.SetBits(backupClocks)
	val := uint16(BKP.DR4.Get())
	if val != 0 {
		PWR.CR.SetBits(PWR_CR_DBP)
		BKP.DR4.Set(0)
		PWR.CR.ClearBits(PWR_CR_DBP)
	}
	RCC.APB1ENR.ClearBits(backupClocks)
	core.RestoreInterrupts(state)
	return val
}

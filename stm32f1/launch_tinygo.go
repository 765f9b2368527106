//go:build tinygo

package stm32f1

import "device/arm"

// launch loads the main stack pointer and branches to pc
func launch(sp, pc uint32) {
	arm.AsmFull(`
		msr msp, {sp}
		bx {pc}
	`, map[string]interface{}{
		"sp": sp,
		"pc": pc,
	})
	for {
	}
}

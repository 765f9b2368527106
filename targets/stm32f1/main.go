//go:build stm32f1

package main

import (
	"canboot/stm32f1"
	"device/arm"
)

func main() {
	// Does not return: bootloaderMain either parks or jumps away
	stm32f1.Main(buildConfig, bootloaderMain)
}

// bootloaderMain starts the application when allowed and otherwise stays
// in the bootloader
func bootloaderMain() {
	stm32f1.StartApplication(buildConfig)
	enterBootloader()
}

// enterBootloader clocks CAN1 and muxes its pins for the flashing
// protocol
func enterBootloader() {
	stm32f1.EnablePClock(stm32f1.CAN1Base)
	stm32f1.GpioPeripheral(canRx, stm32f1.AltFunction(stm32f1.FunctionCAN), stm32f1.PullUp)
	stm32f1.GpioPeripheral(canTx, stm32f1.AltFunction(stm32f1.FunctionCAN), stm32f1.PullNone)

	// Park until the flashing protocol resets the chip or starts the
	// application
	for {
		arm.Asm("wfi")
	}
}

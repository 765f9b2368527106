package serial

import (
	"fmt"
)

// RequestBootloader asks the firmware behind device to reboot into the
// bootloader. Opening the port at BootloaderRequestBaud is the request;
// the firmware stores the boot key and resets once the line coding
// changes, so the port is closed again straight away.
func RequestBootloader(device string, open Opener) error {
	if open == nil {
		open = Open
	}
	port, err := open(DefaultConfig(device))
	if err != nil {
		return fmt.Errorf("bootloader request: %w", err)
	}
	if err := port.Close(); err != nil {
		return fmt.Errorf("bootloader request: close %s: %w", device, err)
	}
	return nil
}

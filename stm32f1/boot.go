package stm32f1

import "canboot/core"

// StartApplication consumes the boot key and starts the application
// unless the key requests the bootloader or the application fails
// CheckApplication. It returns only when the bootloader should keep
// running. A non-zero key other than cfg.MagicKey is discarded.
func StartApplication(cfg core.Config) {
	// Read first so the key is cleared on every boot
	key := ReadMagicKey()
	if key == cfg.MagicKey {
		core.Debug("boot: entry requested")
		return
	}
	if err := CheckApplication(cfg); err != nil {
		if core.IsDebugEnabled() {
			core.Debug("boot: no valid application at " + core.Hex32(cfg.ApplicationStart) + ": " + err.Error())
		}
		return
	}
	if core.IsDebugEnabled() {
		core.Debug("boot: starting application at " + core.Hex32(cfg.ApplicationStart))
	}
	JumpToApplication(cfg.ApplicationStart)
}

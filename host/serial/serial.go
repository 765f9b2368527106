package serial

import (
	"io"
)

// Port represents an open serial port. The bootloader request only
// opens the line at a given rate and closes it again.
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.Closer
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// BootloaderRequestBaud is the line rate that asks USB-serial firmware to
// store the boot key and reset into the bootloader
const BootloaderRequestBaud = 1200

// DefaultConfig returns a configuration for a bootloader entry request
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        BootloaderRequestBaud,
		ReadTimeout: 100, // 100ms read timeout
	}
}

// Opener opens a port; swapped out in tests
type Opener func(cfg *Config) (Port, error)

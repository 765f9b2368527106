package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"canboot/core"
	"canboot/host/image"
	"canboot/host/serial"
)

// configFlags registers the bootloader build options on fs
func configFlags(fs *flag.FlagSet) *core.Config {
	cfg := core.DefaultConfig()
	fs.Func("clock", "target core clock in Hz (default 72000000)", uintFlag(&cfg.ClockFreq))
	fs.Func("crystal", "external crystal frequency in Hz (default 8000000)", uintFlag(&cfg.ClockRefFreq))
	fs.BoolVar(&cfg.ClockRefInternal, "hsi", cfg.ClockRefInternal, "clock the PLL from the internal oscillator")
	fs.Func("flash-size", "flash size in bytes (default 65536)", uintFlag(&cfg.FlashSize))
	fs.Func("ram-size", "SRAM size in bytes (default 20480)", uintFlag(&cfg.RAMSize))
	fs.Func("app-start", "application start address (default 0x08002000)", uintFlag(&cfg.ApplicationStart))
	return &cfg
}

func uintFlag(dst *uint32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*dst = uint32(v)
		return nil
	}
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	cfg := configFlags(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: canboot-tool check [flags] IMAGE")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	img, err := image.Load(fs.Arg(0), cfg.ApplicationStart)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", fs.Arg(0), err)
	}
	if err := img.Check(*cfg); err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}

	sp, reset, _ := img.Vectors()
	fmt.Printf("%s: OK\n", fs.Arg(0))
	fmt.Printf("  range 0x%08X-0x%08X (%d bytes, %d free)\n", img.Start, img.End(), len(img.Data), cfg.FlashEnd()-img.End())
	fmt.Printf("  stack 0x%08X, reset 0x%08X\n", sp, reset)
	fmt.Printf("  PLL x%d, peripheral clock %d Hz\n", cfg.PLLMultiplier(), cfg.PeripheralFrequency())
	return nil
}

func runHex(args []string) error {
	fs := flag.NewFlagSet("hex", flag.ExitOnError)
	cfg := configFlags(fs)
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: canboot-tool hex [flags] IN.bin OUT.hex")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	img, err := image.LoadBinary(data, cfg.ApplicationStart)
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}
	if err := img.Check(*cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	defer out.Close()
	if err := img.WriteHex(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", fs.Arg(1), err)
	}
	return out.Close()
}

func runEnter(args []string) error {
	fs := flag.NewFlagSet("enter", flag.ExitOnError)
	device := fs.String("device", "/dev/ttyACM0", "Serial device path")
	fs.Parse(args)

	fmt.Printf("Requesting bootloader on %s...\n", *device)
	if err := serial.RequestBootloader(*device, nil); err != nil {
		return err
	}
	fmt.Println("Request sent; the device should re-enumerate in bootloader mode")
	return nil
}

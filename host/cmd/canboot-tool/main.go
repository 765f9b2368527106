package main

import (
	"fmt"
	"os"
	"sort"
)

type command struct {
	descr string
	run   func(args []string) error
}

var commands = map[string]command{
	"check": {"check an application image against a bootloader configuration", runCheck},
	"hex":   {"convert a raw application binary to Intel HEX", runHex},
	"enter": {"request bootloader entry over a USB-serial port", runEnter},
}

func printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(os.Stderr, "Usage:\n  canboot-tool COMMAND [ARGUMENTS]\n\nAvailable commands:")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-6s %s\n", name, commands[name].descr)
	}
	fmt.Fprintln(os.Stderr, "\nRun 'canboot-tool COMMAND -h' for command flags.")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err := cmd.run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

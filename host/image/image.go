// Package image loads application firmware images on the host and checks
// them against a bootloader configuration before flashing.
package image

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcinbor85/gohex"

	"canboot/core"
)

// Image errors
var (
	ErrEmpty         = errors.New("image contains no data")
	ErrTooSmall      = errors.New("image shorter than a vector table")
	ErrStartMismatch = errors.New("image not linked at the application start")
	ErrTooLarge      = errors.New("image does not fit in application flash")
)

// Image is a contiguous firmware image at a flash address
type Image struct {
	Start uint32
	Data  []byte
}

// LoadHex parses an Intel HEX image. Gaps between segments are filled
// with erased flash (0xFF).
func LoadHex(r io.Reader) (*Image, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return nil, fmt.Errorf("parse intel hex: %w", err)
	}
	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		return nil, ErrEmpty
	}
	start := segments[0].Address
	last := segments[len(segments)-1]
	end := last.Address + uint32(len(last.Data))
	return &Image{
		Start: start,
		Data:  mem.ToBinary(start, end-start, 0xFF),
	}, nil
}

// LoadBinary wraps a raw binary linked at start
func LoadBinary(data []byte, start uint32) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return &Image{Start: start, Data: data}, nil
}

// Load reads an image file. Files ending in .hex or .ihex are Intel HEX;
// anything else is a raw binary placed at start.
func Load(path string, start uint32) (*Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hex", ".ihex":
		return LoadHex(bytes.NewReader(b))
	default:
		return LoadBinary(b, start)
	}
}

// End is the first address past the image
func (img *Image) End() uint32 {
	return img.Start + uint32(len(img.Data))
}

// Vectors returns the initial stack pointer and reset handler
func (img *Image) Vectors() (sp, reset uint32, err error) {
	if len(img.Data) < 8 {
		return 0, 0, ErrTooSmall
	}
	sp = binary.LittleEndian.Uint32(img.Data[0:4])
	reset = binary.LittleEndian.Uint32(img.Data[4:8])
	return sp, reset, nil
}

// Check verifies the image would be started by a bootloader built
// with cfg
func (img *Image) Check(cfg core.Config) error {
	if img.Start != cfg.ApplicationStart {
		return fmt.Errorf("%w: linked at 0x%08X, expected 0x%08X", ErrStartMismatch, img.Start, cfg.ApplicationStart)
	}
	if img.End() > cfg.FlashEnd() {
		return fmt.Errorf("%w: %d bytes, %d available", ErrTooLarge, len(img.Data), cfg.FlashEnd()-cfg.ApplicationStart)
	}
	sp, reset, err := img.Vectors()
	if err != nil {
		return err
	}
	if err := core.CheckVectorTable(cfg, sp, reset); err != nil {
		return fmt.Errorf("sp=0x%08X reset=0x%08X: %w", sp, reset, err)
	}
	return nil
}

// WriteHex writes the image as Intel HEX
func (img *Image) WriteHex(w io.Writer) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(img.Start, img.Data); err != nil {
		return fmt.Errorf("add binary: %w", err)
	}
	return mem.DumpIntelHex(w, 16)
}

// Package vram models the texture and palette memory visible to the 3D
// engine. The memory system proper (bank switching, the allocation of banks
// to the 2D engines, etc.) is the responsibility of the wider memory
// sub-system. All the 3D engine sees is a series of fixed-size slots, each of
// which may or may not have a bank mapped into it.
package vram

import (
	"fmt"
	"strings"
)

// the number and size of the texture and palette slots. addresses used by the
// texture sampler are linear across all slots of a kind
const (
	NumTextureSlots = 4
	TextureSlotSize = 0x20000

	NumPaletteSlots = 4
	PaletteSlotSize = 0x4000
)

type VRAM struct {
	textures [NumTextureSlots][]uint8
	palettes [NumPaletteSlots][]uint8
}

func Create() *VRAM {
	return &VRAM{}
}

// MapTexture assigns a bank to one of the texture slots. A nil bank unmaps
// the slot. Returns an error if the bank is not exactly TextureSlotSize in
// length or if the slot does not exist.
func (v *VRAM) MapTexture(slot int, bank []uint8) error {
	if slot < 0 || slot >= NumTextureSlots {
		return fmt.Errorf("vram: no such texture slot (%d)", slot)
	}
	if bank != nil && len(bank) != TextureSlotSize {
		return fmt.Errorf("vram: texture bank should be %dkb", TextureSlotSize/1024)
	}
	v.textures[slot] = bank
	return nil
}

// MapPalette assigns a bank to one of the palette slots. A nil bank unmaps
// the slot.
func (v *VRAM) MapPalette(slot int, bank []uint8) error {
	if slot < 0 || slot >= NumPaletteSlots {
		return fmt.Errorf("vram: no such palette slot (%d)", slot)
	}
	if bank != nil && len(bank) != PaletteSlotSize {
		return fmt.Errorf("vram: palette bank should be %dkb", PaletteSlotSize/1024)
	}
	v.palettes[slot] = bank
	return nil
}

// Texture8 reads a byte of texture data. The ok value is false if the
// address falls into an unmapped slot or is out of range entirely.
func (v *VRAM) Texture8(address uint32) (uint8, bool) {
	slot := address / TextureSlotSize
	if slot >= NumTextureSlots || v.textures[slot] == nil {
		return 0, false
	}
	return v.textures[slot][address%TextureSlotSize], true
}

// Texture16 reads a 16bit word of texture data. Like all 16bit values in the
// console, the word is stored little-endian.
//
// The two bytes of the word are read independently, meaning that a word
// starting on the last byte of a slot continues into the next slot (or fails
// if the next slot is unmapped). This matches how the sampler walks texture
// memory as a single linear space.
func (v *VRAM) Texture16(address uint32) (uint16, bool) {
	lo, ok := v.Texture8(address)
	if !ok {
		return 0, false
	}
	hi, ok := v.Texture8(address + 1)
	if !ok {
		return 0, false
	}
	return (uint16(hi) << 8) | uint16(lo), true
}

// Palette16 reads a 16bit palette entry. Palette entries are always read as
// whole words.
func (v *VRAM) Palette16(address uint32) (uint16, bool) {
	slot := address / PaletteSlotSize
	if slot >= NumPaletteSlots || v.palettes[slot] == nil {
		return 0, false
	}
	idx := address % PaletteSlotSize
	lo := v.palettes[slot][idx]

	idx++
	if idx >= PaletteSlotSize {
		slot++
		if slot >= NumPaletteSlots || v.palettes[slot] == nil {
			return 0, false
		}
		idx = 0
	}
	hi := v.palettes[slot][idx]

	return (uint16(hi) << 8) | uint16(lo), true
}

func (v *VRAM) Label() string {
	return "VRAM"
}

func (v *VRAM) String() string {
	var s strings.Builder
	for i := range v.textures {
		if v.textures[i] == nil {
			s.WriteString(fmt.Sprintf("texture %d: unmapped\n", i))
		} else {
			s.WriteString(fmt.Sprintf("texture %d: %dkb\n", i, len(v.textures[i])/1024))
		}
	}
	for i := range v.palettes {
		if v.palettes[i] == nil {
			s.WriteString(fmt.Sprintf("palette %d: unmapped\n", i))
		} else {
			s.WriteString(fmt.Sprintf("palette %d: %dkb\n", i, len(v.palettes[i])/1024))
		}
	}
	return strings.TrimSuffix(s.String(), "\n")
}

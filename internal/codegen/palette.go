package codegen

import (
	"bytes"
	"hash/crc32"

	"github.com/styletools/stylec/internal/style"
	stylecerrors "github.com/styletools/stylec/pkg/errors"
)

// paletteModel is everything the generator needs to emit a palette module:
// declaration-ordered slots with resolved fallback indices, the checksum
// over the compiled definitions, and the name dispatch table.
type paletteModel struct {
	slots    []paletteSlot
	checksum int32
	dispatch *DispatchTable
}

type paletteSlot struct {
	name     string
	color    style.Color
	fallback int
}

// buildPaletteModel walks the palette's variables in declaration order.
// Fallback indices resolve against the names seen so far, which is exactly
// the single-pass ordering the generated finalize routine preserves: a
// color aliasing a later-declared one resolves to no fallback and keeps its
// literal default. The checksum hashes "&name:expression" for every slot.
func buildPaletteModel(module *style.Module, emitter *Emitter) (*paletteModel, error) {
	model := &paletteModel{}
	indices := make(map[string]int, len(module.Variables))
	var checksumInput bytes.Buffer

	for _, variable := range module.Variables {
		name := variable.Identifier()
		if variable.Value.Type.Tag != style.TagColor {
			return nil, stylecerrors.NewEmitError(stylecerrors.CodeNonColorInPalette, name, "palette module holds a non-color variable")
		}

		index := len(model.slots)
		indices[name] = index

		fallback := -1
		if fallbackName := variable.Value.FallbackName(); fallbackName != "" {
			if seen, ok := indices[fallbackName]; ok {
				fallback = seen
			}
		}

		expression, err := emitter.Assignment(variable.Value)
		if err != nil {
			return nil, err
		}
		checksumInput.WriteByte('&')
		checksumInput.WriteString(name)
		checksumInput.WriteByte(':')
		checksumInput.WriteString(expression)

		model.slots = append(model.slots, paletteSlot{
			name:     name,
			color:    variable.Value.Color,
			fallback: fallback,
		})
	}

	pairs := make([]NameIndex, len(model.slots))
	for i, slot := range model.slots {
		pairs[i] = NameIndex{Name: slot.name, Index: i}
	}
	dispatch, err := NewDispatchTable(pairs)
	if err != nil {
		return nil, err
	}

	model.dispatch = dispatch
	model.checksum = int32(crc32.ChecksumIEEE(checksumInput.Bytes()))
	return model, nil
}

// Package codegen turns a loaded style module into generated Go source:
// typed accessors, an init routine, scale-adjusted pixel variables, embedded
// icon atlases, and — for palette modules — the runtime color table with its
// compiled name dispatch.
package codegen

import (
	"fmt"

	"github.com/styletools/stylec/internal/style"
)

// Resources are the module-wide deduplication tables: every distinct pixel
// magnitude, font family and icon asset key maps to one stable index,
// assigned ascending from 1 in first-discovery order. The tables are filled
// by one full traversal and read-only afterwards.
type Resources struct {
	pxValues []int
	pxIndex  map[int]int

	fontFamilies []string
	fontIndex    map[string]int

	iconMasks []string
	iconIndex map[string]int
}

func newResources() *Resources {
	return &Resources{
		pxIndex:   make(map[int]int),
		fontIndex: make(map[string]int),
		iconIndex: make(map[string]int),
	}
}

func (r *Resources) addPx(value int) {
	if _, ok := r.pxIndex[value]; ok {
		return
	}
	r.pxValues = append(r.pxValues, value)
	r.pxIndex[value] = len(r.pxValues)
}

func (r *Resources) addFontFamily(family string) {
	if _, ok := r.fontIndex[family]; ok {
		return
	}
	r.fontFamilies = append(r.fontFamilies, family)
	r.fontIndex[family] = len(r.fontFamilies)
}

func (r *Resources) addIconMask(key string) {
	if _, ok := r.iconIndex[key]; ok {
		return
	}
	r.iconMasks = append(r.iconMasks, key)
	r.iconIndex[key] = len(r.iconMasks)
}

// PxValues returns the recorded magnitudes in first-discovery order.
func (r *Resources) PxValues() []int { return r.pxValues }

// FontFamilies returns the recorded families in first-discovery order.
func (r *Resources) FontFamilies() []string { return r.fontFamilies }

// IconMasks returns the recorded icon asset keys in first-discovery order.
func (r *Resources) IconMasks() []string { return r.iconMasks }

// FontFamilyIndex resolves a family to its index; ok is false when the
// family was never recorded.
func (r *Resources) FontFamilyIndex(family string) (int, bool) {
	index, ok := r.fontIndex[family]
	return index, ok
}

// IconMaskIndex resolves an icon asset key to its index.
func (r *Resources) IconMaskIndex(key string) (int, bool) {
	index, ok := r.iconIndex[key]
	return index, ok
}

// Empty reports whether the traversal found nothing to share.
func (r *Resources) Empty() bool {
	return len(r.pxValues) == 0 && len(r.fontFamilies) == 0 && len(r.iconMasks) == 0
}

// CollectResources traverses every variable of the module, following nested
// struct fields and icon parts, and records every shared resource. Aliases
// are skipped: they reuse the referent's already-collected resources.
func CollectResources(module *style.Module) (*Resources, error) {
	r := newResources()
	for _, variable := range module.Variables {
		if err := r.collectValue(variable.Value); err != nil {
			return nil, fmt.Errorf("variable %s: %w", variable.Identifier(), err)
		}
	}
	return r, nil
}

func (r *Resources) collectValue(value style.Value) error {
	if value.IsCopy() {
		return nil
	}

	switch value.Type.Tag {
	case style.TagInvalid,
		style.TagInt,
		style.TagDouble,
		style.TagString,
		style.TagColor,
		style.TagCursor,
		style.TagAlign:
		// No shared resources.
	case style.TagPixels:
		r.addPx(value.Int)
	case style.TagPoint:
		r.addPx(value.Point.X)
		r.addPx(value.Point.Y)
	case style.TagSize:
		r.addPx(value.Size.W)
		r.addPx(value.Size.H)
	case style.TagMargins:
		r.addPx(value.Margins.Left)
		r.addPx(value.Margins.Top)
		r.addPx(value.Margins.Right)
		r.addPx(value.Margins.Bottom)
	case style.TagFont:
		r.addPx(value.Font.Size)
		if value.Font.Family != "" {
			r.addFontFamily(value.Font.Family)
		}
	case style.TagIcon:
		for _, part := range value.Icon.Parts {
			if !part.Offset.IsCopy() {
				r.addPx(part.Offset.Point.X)
				r.addPx(part.Offset.Point.Y)
			}
			r.addIconMask(part.Filename)
		}
	case style.TagStruct:
		if value.Fields == nil {
			return fmt.Errorf("struct %s has no resolved fields", value.Type.Name)
		}
		for _, field := range value.Fields {
			if err := r.collectValue(field.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

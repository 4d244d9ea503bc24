package codegen

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/styletools/stylec/internal/style"
	stylecerrors "github.com/styletools/stylec/pkg/errors"
)

// stylesPkg is the selector generated code uses for the runtime package.
const stylesPkg = "styles"

// pxValueName derives the deterministic pixel-variable identifier for a
// magnitude; negative magnitudes carry an 'm' sign marker.
func pxValueName(value int) string {
	name := "px"
	if value < 0 {
		value = -value
		name += "m"
	}
	return name + strconv.Itoa(value)
}

// exportedName turns a declared identifier into the exported Go identifier
// generated code uses for it.
func exportedName(identifier string) string {
	r, size := utf8.DecodeRuneInString(identifier)
	if r == utf8.RuneError {
		return identifier
	}
	return string(unicode.ToUpper(r)) + identifier[size:]
}

// Emitter is a pure value-to-expression translator. It consults the
// module's resource tables for anything that lives in a shared runtime slot
// and the qualify callback for alias references, which may point into an
// included module's generated package.
type Emitter struct {
	module        *style.Module
	resources     *Resources
	qualify       func(identifier string) (string, error)
	qualifyStruct func(name string) (string, error)
}

// NewEmitter builds an emitter over a collected module. A nil qualify (or
// qualifyStruct) resolves references to the exported identifier within the
// same package.
func NewEmitter(module *style.Module, resources *Resources, qualify func(string) (string, error), qualifyStruct func(string) (string, error)) *Emitter {
	if qualify == nil {
		qualify = func(identifier string) (string, error) {
			return exportedName(identifier), nil
		}
	}
	if qualifyStruct == nil {
		qualifyStruct = func(name string) (string, error) {
			return exportedName(name), nil
		}
	}
	return &Emitter{module: module, resources: resources, qualify: qualify, qualifyStruct: qualifyStruct}
}

// TypeString maps a semantic type to its generated Go type.
func (e *Emitter) TypeString(t style.Type) (string, error) {
	switch t.Tag {
	case style.TagInt:
		return "int", nil
	case style.TagDouble:
		return "float64", nil
	case style.TagPixels:
		return "int", nil
	case style.TagString:
		return "string", nil
	case style.TagColor:
		return stylesPkg + ".Color", nil
	case style.TagPoint:
		return stylesPkg + ".Point", nil
	case style.TagSize:
		return stylesPkg + ".Size", nil
	case style.TagCursor:
		return stylesPkg + ".Cursor", nil
	case style.TagAlign:
		return stylesPkg + ".Align", nil
	case style.TagMargins:
		return stylesPkg + ".Margins", nil
	case style.TagFont:
		return stylesPkg + ".Font", nil
	case style.TagIcon:
		return stylesPkg + ".Icon", nil
	case style.TagStruct:
		if e.module.FindStruct(t.Name) == nil {
			return "", stylecerrors.NewEmitError(stylecerrors.CodeUnresolvedStruct, t.Name, "unknown struct type")
		}
		return e.qualifyStruct(t.Name)
	}
	return "", stylecerrors.NewEmitError(stylecerrors.CodeUnresolvedType, t.Tag.String(), "type has no generated representation")
}

// Assignment turns a value into the expression its accessor is initialized
// from. Aliases resolve to a reference, with a Clone call appended for the
// reference-typed tags (Color, Struct) whose representation carries owned
// storage; every scalar tag aliases by plain value copy.
func (e *Emitter) Assignment(value style.Value) (string, error) {
	if value.IsCopy() {
		ref, err := e.qualify(value.CopyOf)
		if err != nil {
			return "", err
		}
		if value.Type.Tag == style.TagColor || value.Type.Tag == style.TagStruct {
			ref += ".Clone()"
		}
		return ref, nil
	}

	switch value.Type.Tag {
	case style.TagInt:
		return strconv.Itoa(value.Int), nil
	case style.TagDouble:
		return strconv.FormatFloat(value.Double, 'g', -1, 64), nil
	case style.TagPixels:
		return pxValueName(value.Int), nil
	case style.TagString:
		return strconv.Quote(value.Str), nil
	case style.TagColor:
		c := value.Color
		return stylesPkg + ".NewColor(" + joinInts(int(c.R), int(c.G), int(c.B), int(c.A)) + ")", nil
	case style.TagPoint:
		return stylesPkg + ".Point{" + pxValueName(value.Point.X) + ", " + pxValueName(value.Point.Y) + "}", nil
	case style.TagSize:
		return stylesPkg + ".Size{" + pxValueName(value.Size.W) + ", " + pxValueName(value.Size.H) + "}", nil
	case style.TagCursor:
		return stylesPkg + ".Cur" + exportedName(value.Str), nil
	case style.TagAlign:
		return stylesPkg + ".Align" + exportedName(value.Str), nil
	case style.TagMargins:
		m := value.Margins
		return stylesPkg + ".Margins{" +
			pxValueName(m.Left) + ", " + pxValueName(m.Top) + ", " +
			pxValueName(m.Right) + ", " + pxValueName(m.Bottom) + "}", nil
	case style.TagFont:
		return e.fontAssignment(value.Font)
	case style.TagIcon:
		return e.iconAssignment(value.Icon)
	case style.TagStruct:
		return e.structAssignment(value)
	}
	return "", stylecerrors.NewEmitError(stylecerrors.CodeUnresolvedType, value.Type.Tag.String(), "value has no generated representation")
}

func (e *Emitter) fontAssignment(font style.Font) (string, error) {
	family := "0"
	if font.Family != "" {
		index, ok := e.resources.FontFamilyIndex(font.Family)
		if !ok {
			return "", stylecerrors.NewEmitError(stylecerrors.CodeUnindexedResource, font.Family, "font family was never indexed")
		}
		family = "font" + strconv.Itoa(index) + "Index"
	}
	return stylesPkg + ".Font{" + pxValueName(font.Size) + ", " + strconv.Itoa(font.Flags) + ", " + family + "}", nil
}

func (e *Emitter) iconAssignment(icon style.Icon) (string, error) {
	if len(icon.Parts) == 0 {
		return stylesPkg + ".Icon{}", nil
	}

	parts := make([]string, 0, len(icon.Parts))
	for _, part := range icon.Parts {
		index, ok := e.resources.IconMaskIndex(part.Filename)
		if !ok {
			return "", stylecerrors.NewEmitError(stylecerrors.CodeUnindexedResource, part.Filename, "icon mask was never indexed")
		}
		color, err := e.Assignment(part.Color)
		if err != nil {
			return "", err
		}
		offset, err := e.Assignment(part.Offset)
		if err != nil {
			return "", err
		}
		parts = append(parts, "{iconMask"+strconv.Itoa(index)+", "+color+", "+offset+"}")
	}
	return stylesPkg + ".Icon{[]" + stylesPkg + ".MonoIcon{" + strings.Join(parts, ", ") + "}}", nil
}

func (e *Emitter) structAssignment(value style.Value) (string, error) {
	if value.Fields == nil {
		return "", stylecerrors.NewEmitError(stylecerrors.CodeUnresolvedStruct, value.Type.Name, "struct value has no resolved fields")
	}

	fields := make([]string, 0, len(value.Fields))
	for _, field := range value.Fields {
		expr, err := e.Assignment(field.Value)
		if err != nil {
			return "", err
		}
		fields = append(fields, expr)
	}
	typeName, err := e.qualifyStruct(value.Type.Name)
	if err != nil {
		return "", err
	}
	return typeName + "{" + strings.Join(fields, ", ") + "}", nil
}

func joinInts(values ...int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

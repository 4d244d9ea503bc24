package project

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/styletools/stylec/internal/style"
)

var cursorNames = map[string]bool{
	"default": true, "pointer": true, "text": true, "cross": true,
}

var alignNames = map[string]bool{
	"topleft": true, "top": true, "topright": true,
	"left": true, "center": true, "right": true,
	"bottomleft": true, "bottom": true, "bottomright": true,
}

var fontFlagBits = map[string]int{
	"bold":      1,
	"italic":    2,
	"underline": 4,
}

// parseVariableValue turns one variable declaration into a model value. A
// `copy` field aliases an earlier declaration wholesale; otherwise the
// declared type drives how the literal payload is read.
func parseVariableValue(module *style.Module, doc variableDoc) (style.Value, error) {
	if doc.Copy != "" {
		var want *style.Type
		if doc.Type != "" {
			resolved, err := resolveType(module, doc.Type)
			if err != nil {
				return style.Value{}, err
			}
			want = &resolved
		}
		return aliasValue(module, doc.Copy, want)
	}

	valueType, err := resolveType(module, doc.Type)
	if err != nil {
		return style.Value{}, err
	}
	return parseValueNode(module, valueType, &doc.Value)
}

// aliasValue resolves an alias target and clones its payload, recording the
// reference so emission and palette fallbacks can see it.
func aliasValue(module *style.Module, target string, want *style.Type) (style.Value, error) {
	referent, _ := module.FindVariable(target)
	if referent == nil {
		return style.Value{}, fmt.Errorf("alias references unknown variable %q (aliases may only point at earlier declarations)", target)
	}

	value := referent.Value
	if want != nil {
		if value.Type.Tag != want.Tag || (want.Tag == style.TagStruct && value.Type.Name != want.Name) {
			return style.Value{}, fmt.Errorf("alias %q has type %s, want %s", target, value.Type.Tag, want.Tag)
		}
	}
	value.CopyOf = target
	return value, nil
}

// aliasableTag lists the tags whose literals may be replaced by a bare name
// in a value position. String-payload tags are excluded: there a string is
// the literal itself.
func aliasableTag(tag style.Tag) bool {
	switch tag {
	case style.TagColor, style.TagPoint, style.TagSize, style.TagMargins,
		style.TagFont, style.TagIcon, style.TagStruct:
		return true
	}
	return false
}

func parseValueNode(module *style.Module, valueType style.Type, node *yaml.Node) (style.Value, error) {
	if node == nil || node.Kind == 0 {
		return style.Value{}, fmt.Errorf("missing value for %s", valueType.Tag)
	}

	if node.Kind == yaml.ScalarNode && aliasableTag(valueType.Tag) {
		var text string
		if err := node.Decode(&text); err == nil && !(valueType.Tag == style.TagColor && strings.HasPrefix(text, "#")) {
			return aliasValue(module, text, &valueType)
		}
	}

	value := style.Value{Type: valueType}
	switch valueType.Tag {
	case style.TagInt, style.TagPixels:
		if err := node.Decode(&value.Int); err != nil {
			return style.Value{}, fmt.Errorf("bad %s literal: %w", valueType.Tag, err)
		}
	case style.TagDouble:
		if err := node.Decode(&value.Double); err != nil {
			return style.Value{}, fmt.Errorf("bad double literal: %w", err)
		}
	case style.TagString:
		if err := node.Decode(&value.Str); err != nil {
			return style.Value{}, fmt.Errorf("bad string literal: %w", err)
		}
	case style.TagCursor:
		if err := node.Decode(&value.Str); err != nil || !cursorNames[value.Str] {
			return style.Value{}, fmt.Errorf("bad cursor name %q", value.Str)
		}
	case style.TagAlign:
		if err := node.Decode(&value.Str); err != nil || !alignNames[value.Str] {
			return style.Value{}, fmt.Errorf("bad align name %q", value.Str)
		}
	case style.TagColor:
		var text string
		if err := node.Decode(&text); err != nil {
			return style.Value{}, fmt.Errorf("bad color literal: %w", err)
		}
		color, err := style.ParseColor(text)
		if err != nil {
			return style.Value{}, err
		}
		value.Color = color
	case style.TagPoint:
		coords, err := decodeInts(node, 2)
		if err != nil {
			return style.Value{}, fmt.Errorf("bad point literal: %w", err)
		}
		value.Point = style.Point{X: coords[0], Y: coords[1]}
	case style.TagSize:
		coords, err := decodeInts(node, 2)
		if err != nil {
			return style.Value{}, fmt.Errorf("bad size literal: %w", err)
		}
		value.Size = style.Size{W: coords[0], H: coords[1]}
	case style.TagMargins:
		coords, err := decodeInts(node, 4)
		if err != nil {
			return style.Value{}, fmt.Errorf("bad margins literal: %w", err)
		}
		value.Margins = style.Margins{Left: coords[0], Top: coords[1], Right: coords[2], Bottom: coords[3]}
	case style.TagFont:
		font, err := decodeFont(node)
		if err != nil {
			return style.Value{}, err
		}
		value.Font = font
	case style.TagIcon:
		icon, err := decodeIcon(module, node)
		if err != nil {
			return style.Value{}, err
		}
		value.Icon = icon
	case style.TagStruct:
		fields, err := decodeStructFields(module, valueType.Name, node)
		if err != nil {
			return style.Value{}, err
		}
		value.Fields = fields
	default:
		return style.Value{}, fmt.Errorf("type %s cannot carry a literal", valueType.Tag)
	}
	return value, nil
}

func decodeInts(node *yaml.Node, want int) ([]int, error) {
	var values []int
	if err := node.Decode(&values); err != nil {
		return nil, err
	}
	if len(values) != want {
		return nil, fmt.Errorf("want %d components, got %d", want, len(values))
	}
	return values, nil
}

func decodeFont(node *yaml.Node) (style.Font, error) {
	var doc fontDoc
	if err := node.Decode(&doc); err != nil {
		return style.Font{}, fmt.Errorf("bad font literal: %w", err)
	}
	if doc.Size <= 0 {
		return style.Font{}, fmt.Errorf("bad font size %d", doc.Size)
	}

	flags := 0
	for _, flag := range doc.Flags {
		bit, ok := fontFlagBits[flag]
		if !ok {
			return style.Font{}, fmt.Errorf("unknown font flag %q", flag)
		}
		flags |= bit
	}
	return style.Font{Size: doc.Size, Flags: flags, Family: doc.Family}, nil
}

func decodeIcon(module *style.Module, node *yaml.Node) (style.Icon, error) {
	var parts []iconPartDoc
	if err := node.Decode(&parts); err != nil {
		return style.Icon{}, fmt.Errorf("bad icon literal: %w", err)
	}

	icon := style.Icon{}
	for i, part := range parts {
		if part.File == "" {
			return style.Icon{}, fmt.Errorf("icon part %d has no file", i)
		}

		color, err := parseValueNode(module, style.Type{Tag: style.TagColor}, &part.Color)
		if err != nil {
			return style.Icon{}, fmt.Errorf("icon part %d: %w", i, err)
		}

		offset := style.Value{Type: style.Type{Tag: style.TagPoint}}
		if part.Offset.Kind != 0 {
			offset, err = parseValueNode(module, style.Type{Tag: style.TagPoint}, &part.Offset)
			if err != nil {
				return style.Icon{}, fmt.Errorf("icon part %d: %w", i, err)
			}
		}

		icon.Parts = append(icon.Parts, style.IconPart{
			Filename: part.File,
			Color:    color,
			Offset:   offset,
		})
	}
	return icon, nil
}

func decodeStructFields(module *style.Module, structName string, node *yaml.Node) ([]style.Field, error) {
	declaration := module.FindStruct(structName)
	if declaration == nil {
		return nil, fmt.Errorf("unknown struct %q", structName)
	}

	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("bad struct literal for %q: %w", structName, err)
	}

	fields := make([]style.Field, 0, len(declaration.Fields))
	for _, declared := range declaration.Fields {
		fieldNode, ok := raw[declared.Name]
		if !ok {
			return nil, fmt.Errorf("struct %q literal is missing field %q", structName, declared.Name)
		}
		delete(raw, declared.Name)

		value, err := parseValueNode(module, declared.Type, &fieldNode)
		if err != nil {
			return nil, fmt.Errorf("struct %q field %q: %w", structName, declared.Name, err)
		}
		fields = append(fields, style.Field{Name: declared.Name, Type: declared.Type, Value: value})
	}

	for name := range raw {
		return nil, fmt.Errorf("struct %q literal has unknown field %q", structName, name)
	}
	return fields, nil
}

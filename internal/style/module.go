package style

import (
	"path/filepath"
	"strings"
)

// Kind distinguishes the two module flavors.
type Kind int

const (
	// KindStyle generates plain accessors plus an init routine.
	KindStyle Kind = iota
	// KindPalette requires every top-level variable to be a color and
	// additionally generates the runtime color table.
	KindPalette
)

// Variable is a named value. Name is the hierarchical path; the last
// segment is the identifier used in generated code.
type Variable struct {
	Name  []string
	Value Value
}

// Identifier returns the variable's last name segment.
func (v Variable) Identifier() string {
	if len(v.Name) == 0 {
		return ""
	}
	return v.Name[len(v.Name)-1]
}

// StructField is one typed field of a struct declaration.
type StructField struct {
	Name string
	Type Type
}

// Struct is a named ordered field list, declared locally or imported from
// an included module.
type Struct struct {
	Name   string
	Fields []StructField
}

// Module is one compiled unit: ordered variables, ordered structs, and the
// ordered modules it includes.
type Module struct {
	Path      string
	Kind      Kind
	Variables []Variable
	Structs   []Struct
	Includes  []*Module
}

// BaseName derives the generated artifact's base name from the module path:
// palette modules collapse to "palette", style modules keep their file stem
// prefixed with "style_".
func (m *Module) BaseName() string {
	if m.Kind == KindPalette {
		return "palette"
	}
	stem := filepath.Base(m.Path)
	for {
		ext := filepath.Ext(stem)
		if ext == "" {
			break
		}
		stem = strings.TrimSuffix(stem, ext)
	}
	return "style_" + stem
}

// HasVariables reports whether the module declares any variables.
func (m *Module) HasVariables() bool { return len(m.Variables) > 0 }

// HasStructs reports whether the module declares any structs.
func (m *Module) HasStructs() bool { return len(m.Structs) > 0 }

// HasIncludes reports whether the module includes other modules.
func (m *Module) HasIncludes() bool { return len(m.Includes) > 0 }

// EnumVariables visits the module's own variables in declaration order,
// stopping early when fn returns false. It reports whether the walk
// completed.
func (m *Module) EnumVariables(fn func(Variable) bool) bool {
	for _, v := range m.Variables {
		if !fn(v) {
			return false
		}
	}
	return true
}

// EnumStructs visits the module's own structs in declaration order.
func (m *Module) EnumStructs(fn func(Struct) bool) bool {
	for _, s := range m.Structs {
		if !fn(s) {
			return false
		}
	}
	return true
}

// EnumIncludes visits included modules in declaration order.
func (m *Module) EnumIncludes(fn func(*Module) bool) bool {
	for _, inc := range m.Includes {
		if !fn(inc) {
			return false
		}
	}
	return true
}

// FindStruct resolves a struct name through the module and, recursively,
// its includes. It returns nil when the name is unknown.
func (m *Module) FindStruct(name string) *Struct {
	if s := m.FindStructHere(name); s != nil {
		return s
	}
	for _, inc := range m.Includes {
		if s := inc.FindStruct(name); s != nil {
			return s
		}
	}
	return nil
}

// FindStructHere resolves a struct name against this module only.
func (m *Module) FindStructHere(name string) *Struct {
	for i := range m.Structs {
		if m.Structs[i].Name == name {
			return &m.Structs[i]
		}
	}
	return nil
}

// FindVariable resolves a variable identifier through the module and,
// recursively, its includes. It returns the variable and the module that
// declares it, or nil when unknown.
func (m *Module) FindVariable(identifier string) (*Variable, *Module) {
	for i := range m.Variables {
		if m.Variables[i].Identifier() == identifier {
			return &m.Variables[i], m
		}
	}
	for _, inc := range m.Includes {
		if v, owner := inc.FindVariable(identifier); v != nil {
			return v, owner
		}
	}
	return nil, nil
}

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/styletools/stylec/internal/style"
	stylecerrors "github.com/styletools/stylec/pkg/errors"
)

// Project is a fully loaded compilation unit set.
type Project struct {
	Dir      string
	Manifest Manifest
	Modules  []*style.Module
}

// Load reads and validates the manifest, then loads every referenced
// module, resolving includes recursively with cycle detection.
func Load(manifestPath string) (*Project, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, stylecerrors.NewParseError(manifestPath, 0, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, stylecerrors.NewParseError(manifestPath, 0, err)
	}
	if err := validatorInstance().Struct(&manifest); err != nil {
		return nil, stylecerrors.NewValidationError("manifest", err.Error(), err)
	}

	project := &Project{
		Dir:      filepath.Dir(manifestPath),
		Manifest: manifest,
	}

	loader := &moduleLoader{
		dir:     project.Dir,
		loaded:  make(map[string]*style.Module),
		loading: make(map[string]bool),
	}
	for _, ref := range manifest.Modules {
		module, err := loader.load(ref.Path)
		if err != nil {
			return nil, err
		}
		project.Modules = append(project.Modules, module)
	}
	return project, nil
}

// Palette returns the project's palette module, or nil when none is
// declared.
func (p *Project) Palette() *style.Module {
	for _, module := range p.Modules {
		if module.Kind == style.KindPalette {
			return module
		}
	}
	return nil
}

type moduleLoader struct {
	dir     string
	loaded  map[string]*style.Module
	loading map[string]bool
}

func (l *moduleLoader) load(relPath string) (*style.Module, error) {
	key := filepath.Clean(relPath)
	if module, ok := l.loaded[key]; ok {
		return module, nil
	}
	if l.loading[key] {
		return nil, stylecerrors.NewValidationError("includes", fmt.Sprintf("include cycle through %q", relPath), nil)
	}
	l.loading[key] = true
	defer delete(l.loading, key)

	fullPath := filepath.Join(l.dir, relPath)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, stylecerrors.NewParseError(fullPath, 0, err)
	}

	var doc moduleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, stylecerrors.NewParseError(fullPath, 0, err)
	}

	module := &style.Module{
		Path: relPath,
		Kind: moduleKind(relPath),
	}

	for _, include := range doc.Includes {
		included, err := l.load(include)
		if err != nil {
			return nil, err
		}
		module.Includes = append(module.Includes, included)
	}

	if err := buildStructs(module, doc.Structs); err != nil {
		return nil, err
	}
	if err := buildVariables(module, doc.Variables); err != nil {
		return nil, err
	}

	l.loaded[key] = module
	return module, nil
}

// moduleKind infers the flavor from the file name: "colors.palette.yaml"
// is a palette, everything else a plain style module.
func moduleKind(path string) style.Kind {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.HasSuffix(stem, ".palette") {
		return style.KindPalette
	}
	return style.KindStyle
}

func buildStructs(module *style.Module, docs []structDoc) error {
	for i, doc := range docs {
		field := func(sub string) string { return fmt.Sprintf("structs[%d].%s", i, sub) }
		if !validIdentifier(doc.Name) {
			return stylecerrors.NewValidationError(field("name"), fmt.Sprintf("bad struct name %q", doc.Name), nil)
		}
		if module.FindStruct(doc.Name) != nil {
			return stylecerrors.NewValidationError(field("name"), fmt.Sprintf("duplicate struct %q", doc.Name), nil)
		}

		s := style.Struct{Name: doc.Name}
		for j, f := range doc.Fields {
			if !validIdentifier(f.Name) {
				return stylecerrors.NewValidationError(field(fmt.Sprintf("fields[%d].name", j)), fmt.Sprintf("bad field name %q", f.Name), nil)
			}
			fieldType, err := resolveType(module, f.Type)
			if err != nil {
				return stylecerrors.NewValidationError(field(fmt.Sprintf("fields[%d].type", j)), err.Error(), err)
			}
			s.Fields = append(s.Fields, style.StructField{Name: f.Name, Type: fieldType})
		}
		module.Structs = append(module.Structs, s)
	}
	return nil
}

func buildVariables(module *style.Module, docs []variableDoc) error {
	for i, doc := range docs {
		field := func(sub string) string { return fmt.Sprintf("variables[%d].%s", i, sub) }
		if !validIdentifier(doc.Name) {
			return stylecerrors.NewValidationError(field("name"), fmt.Sprintf("bad variable name %q", doc.Name), nil)
		}
		if existing, _ := module.FindVariable(doc.Name); existing != nil {
			return stylecerrors.NewValidationError(field("name"), fmt.Sprintf("duplicate variable %q", doc.Name), nil)
		}

		value, err := parseVariableValue(module, doc)
		if err != nil {
			return stylecerrors.NewValidationError(field("value"), err.Error(), err)
		}

		if module.Kind == style.KindPalette && value.Type.Tag != style.TagColor {
			return stylecerrors.NewValidationError(field("type"), fmt.Sprintf("palette variable %q must be a color", doc.Name), nil)
		}

		module.Variables = append(module.Variables, style.Variable{
			Name:  []string{doc.Name},
			Value: value,
		})
	}
	return nil
}

// resolveType maps a declared type name to the model: a built-in tag name,
// or the name of a struct visible from the module.
func resolveType(module *style.Module, name string) (style.Type, error) {
	if tag := style.ParseTag(name); tag != style.TagInvalid {
		return style.Type{Tag: tag}, nil
	}
	if module.FindStruct(name) != nil {
		return style.Type{Tag: style.TagStruct, Name: name}, nil
	}
	return style.Type{}, fmt.Errorf("unknown type %q", name)
}

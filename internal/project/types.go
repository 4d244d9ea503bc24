// Package project loads a compilation project: a YAML manifest naming the
// style modules to compile, plus the module definition documents
// themselves. Loading produces the immutable in-memory model the code
// generator consumes.
package project

import "gopkg.in/yaml.v3"

// Manifest is the project document.
type Manifest struct {
	Version   string      `yaml:"version" validate:"required,semver"`
	Name      string      `yaml:"name" validate:"required,min=1,max=100"`
	Package   string      `yaml:"package" validate:"required"`
	OutputDir string      `yaml:"output_dir" validate:"required"`
	AssetDir  string      `yaml:"asset_dir,omitempty"`
	ThemePath string      `yaml:"theme_path,omitempty"`
	Modules   []ModuleRef `yaml:"modules" validate:"required,min=1,dive"`
}

// ModuleRef names one module definition file, relative to the manifest.
type ModuleRef struct {
	Path string `yaml:"path" validate:"required"`
}

// moduleDoc is the on-disk shape of one module definition.
type moduleDoc struct {
	Includes  []string      `yaml:"includes"`
	Structs   []structDoc   `yaml:"structs"`
	Variables []variableDoc `yaml:"variables"`
}

type structDoc struct {
	Name   string     `yaml:"name"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// variableDoc declares one named value. Copy aliases another declaration;
// Value carries the literal payload, whose shape depends on Type.
type variableDoc struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Copy  string    `yaml:"copy"`
	Value yaml.Node `yaml:"value"`
}

// iconPartDoc is one layer of an icon literal.
type iconPartDoc struct {
	File   string    `yaml:"file"`
	Color  yaml.Node `yaml:"color"`
	Offset yaml.Node `yaml:"offset"`
}

// fontDoc is a font literal.
type fontDoc struct {
	Size   int      `yaml:"size"`
	Family string   `yaml:"family"`
	Flags  []string `yaml:"flags"`
}

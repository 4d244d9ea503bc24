package codegen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/styletools/stylec/internal/style"
	stylecerrors "github.com/styletools/stylec/pkg/errors"
	"github.com/styletools/stylec/pkg/styles"
)

// RuntimeImport is the package generated code gets its value types and
// palette machinery from.
const RuntimeImport = "github.com/styletools/stylec/pkg/styles"

// Options configures one module's generation pass.
type Options struct {
	// OutDir is the root the generated package directories land under.
	OutDir string
	// ImportBase is the import path prefix matching OutDir, used to wire
	// imports between generated packages.
	ImportBase string
	// AssetDir is the root icon asset paths resolve against.
	AssetDir string
}

// Generator compiles one module into one generated Go file. All output is
// buffered; nothing reaches disk unless the whole module emits cleanly.
type Generator struct {
	module    *style.Module
	opts      Options
	resources *Resources
	emitter   *Emitter
	file      *goFile
}

// NewGenerator prepares a generator for the module.
func NewGenerator(module *style.Module, opts Options) *Generator {
	g := &Generator{module: module, opts: opts}
	return g
}

// PackageName derives the generated package name for a module.
func PackageName(module *style.Module) string {
	if module.Kind == style.KindPalette {
		return "palette"
	}
	return sanitizeIdent(strings.TrimPrefix(module.BaseName(), "style_"))
}

func sanitizeIdent(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	if b.Len() == 0 {
		return "style"
	}
	return b.String()
}

// OutputPath returns where the module's generated file goes.
func (g *Generator) OutputPath() string {
	return filepath.Join(g.opts.OutDir, PackageName(g.module), g.module.BaseName()+".go")
}

// Generate runs the whole pass: resource collection, code emission, atomic
// commit. It returns the output path and whether the file actually changed.
func (g *Generator) Generate() (string, bool, error) {
	resources, err := CollectResources(g.module)
	if err != nil {
		return "", false, err
	}
	g.resources = resources

	path := g.OutputPath()
	g.file = newGoFile(path, PackageName(g.module))
	g.emitter = NewEmitter(g.module, resources, g.qualifyVariable, g.qualifyStruct)

	if g.module.HasVariables() || g.module.Kind == style.KindPalette {
		g.file.addImport(RuntimeImport)
	}

	if err := g.writeStructs(); err != nil {
		return "", false, err
	}

	if g.module.Kind == style.KindPalette {
		if err := g.writePalette(); err != nil {
			return "", false, err
		}
	} else {
		if err := g.writeStyle(); err != nil {
			return "", false, err
		}
	}

	wrote, err := g.file.commit()
	if err != nil {
		return "", false, err
	}
	return path, wrote, nil
}

// qualifyVariable resolves an alias reference to the expression that reads
// it: a bare exported identifier in the same package, a selector through
// the owning module's generated package otherwise. Palette colors read
// through accessor calls.
func (g *Generator) qualifyVariable(identifier string) (string, error) {
	variable, owner := g.module.FindVariable(identifier)
	if variable == nil {
		return "", stylecerrors.NewEmitError(stylecerrors.CodeUnresolvedAlias, identifier, "alias references unknown variable")
	}

	ref := exportedName(identifier)
	if owner.Kind == style.KindPalette {
		ref += "()"
	}
	if owner != g.module {
		pkg := PackageName(owner)
		g.file.addImport(g.opts.ImportBase + "/" + pkg)
		ref = pkg + "." + ref
	}
	return ref, nil
}

func (g *Generator) qualifyStruct(name string) (string, error) {
	if g.module.FindStructHere(name) != nil {
		return exportedName(name), nil
	}
	for _, inc := range g.module.Includes {
		if inc.FindStruct(name) != nil {
			pkg := PackageName(inc)
			g.file.addImport(g.opts.ImportBase + "/" + pkg)
			return pkg + "." + exportedName(name), nil
		}
	}
	return "", stylecerrors.NewEmitError(stylecerrors.CodeUnresolvedStruct, name, "unknown struct type")
}

func (g *Generator) writeStructs() error {
	ok := g.module.EnumStructs(func(s style.Struct) bool {
		g.file.printf("type %s struct {\n", exportedName(s.Name))
		for _, field := range s.Fields {
			typeName, err := g.emitter.TypeString(field.Type)
			if err != nil {
				return false
			}
			g.file.printf("\t%s %s\n", exportedName(field.Name), typeName)
		}
		g.file.line("}")
		g.file.newline()

		clones := make([]string, 0, len(s.Fields))
		for _, field := range s.Fields {
			clone := "v." + exportedName(field.Name)
			if field.Type.Tag == style.TagColor || field.Type.Tag == style.TagStruct {
				clone += ".Clone()"
			}
			clones = append(clones, clone)
		}
		g.file.printf("// Clone returns a copy owning its reference-typed fields.\n")
		g.file.printf("func (v %s) Clone() %s {\n", exportedName(s.Name), exportedName(s.Name))
		g.file.printf("\treturn %s{%s}\n", exportedName(s.Name), strings.Join(clones, ", "))
		g.file.line("}")
		g.file.newline()
		return true
	})
	if !ok {
		return stylecerrors.NewEmitError(stylecerrors.CodeUnresolvedType, g.module.Path, "struct field type has no generated representation")
	}
	return nil
}

func (g *Generator) writeStyle() error {
	if !g.module.HasVariables() {
		return nil
	}

	if err := g.writeDeclarations(); err != nil {
		return err
	}
	if err := g.writeSharedValues(); err != nil {
		return err
	}
	return g.writeInit()
}

func (g *Generator) writeDeclarations() error {
	g.file.line("var (")
	ok := g.module.EnumVariables(func(v style.Variable) bool {
		typeName, err := g.emitter.TypeString(v.Value.Type)
		if err != nil {
			return false
		}
		g.file.printf("\t%s %s\n", exportedName(v.Identifier()), typeName)
		return true
	})
	g.file.line(")")
	g.file.newline()
	if !ok {
		return stylecerrors.NewEmitError(stylecerrors.CodeUnresolvedType, g.module.Path, "variable type has no generated representation")
	}
	return nil
}

// writeSharedValues emits the deduplicated resource slots: scale-adjusted
// pixel variables, registered font family indices, and embedded icon masks.
func (g *Generator) writeSharedValues() error {
	if err := g.writePxValues(); err != nil {
		return err
	}
	if err := g.writeFontFamilies(); err != nil {
		return err
	}
	return g.writeIconValues()
}

var scaleConstNames = map[styles.Scale]string{
	styles.ScaleOne:           "ScaleOne",
	styles.ScaleOneAndQuarter: "ScaleOneAndQuarter",
	styles.ScaleOneAndHalf:    "ScaleOneAndHalf",
	styles.ScaleTwo:           "ScaleTwo",
}

func (g *Generator) writePxValues() error {
	values := g.resources.PxValues()
	if len(values) == 0 {
		return nil
	}

	g.file.line("var (")
	for _, value := range values {
		g.file.printf("\t%s = %d\n", pxValueName(value), value)
	}
	g.file.line(")")
	g.file.newline()

	g.file.line("func initPxValues() {")
	g.file.line("\tif " + stylesPkg + ".Retina() {")
	g.file.line("\t\treturn")
	g.file.line("\t}")
	g.file.newline()
	g.file.line("\tswitch " + stylesPkg + ".CurrentScale() {")
	for _, scale := range styles.Scales[1:] {
		g.file.printf("\tcase %s.%s:\n", stylesPkg, scaleConstNames[scale])
		for _, value := range values {
			adjusted := styles.PxAdjust(value, scale)
			if adjusted != value {
				g.file.printf("\t\t%s = %d\n", pxValueName(value), adjusted)
			}
		}
	}
	g.file.line("\t}")
	g.file.line("}")
	g.file.newline()
	return nil
}

func (g *Generator) writeFontFamilies() error {
	families := g.resources.FontFamilies()
	if len(families) == 0 {
		return nil
	}

	g.file.line("var (")
	for _, family := range families {
		index, _ := g.resources.FontFamilyIndex(family)
		g.file.printf("\tfont%dIndex int\n", index)
	}
	g.file.line(")")
	g.file.newline()

	g.file.line("func initFontFamilies() {")
	for _, family := range families {
		index, _ := g.resources.FontFamilyIndex(family)
		g.file.printf("\tfont%dIndex = %s.RegisterFontFamily(%q)\n", index, stylesPkg, family)
	}
	g.file.line("}")
	g.file.newline()
	return nil
}

func (g *Generator) writeIconValues() error {
	masks := g.resources.IconMasks()
	for _, key := range masks {
		index, _ := g.resources.IconMaskIndex(key)
		data, err := BuildIconMask(key, g.opts.AssetDir)
		if err != nil {
			return err
		}
		g.writeByteSlice(fmt.Sprintf("iconMask%dData", index), data)
		g.file.printf("var iconMask%d = %s.NewIconMask(iconMask%dData)\n", index, stylesPkg, index)
		g.file.newline()
	}
	return nil
}

// writeByteSlice embeds a blob as a byte-slice literal, thirteen bytes per
// row.
func (g *Generator) writeByteSlice(name string, data []byte) {
	g.file.printf("var %s = []byte{\n", name)
	for offset := 0; offset < len(data); offset += 13 {
		end := offset + 13
		if end > len(data) {
			end = len(data)
		}
		row := make([]string, 0, 13)
		for _, b := range data[offset:end] {
			row = append(row, fmt.Sprintf("0x%02x", b))
		}
		g.file.printf("\t%s,\n", strings.Join(row, ", "))
	}
	g.file.line("}")
	g.file.newline()
}

// writeInitHeader opens the guarded init routine shared by both module
// kinds, chaining the init of every included module that declares
// variables.
func (g *Generator) writeInitHeader() {
	g.file.line("var inited bool")
	g.file.newline()
	g.file.line("// Init resolves every value once. Call it during startup, before any")
	g.file.line("// style value is read.")
	g.file.line("func Init() {")
	g.file.line("\tif inited {")
	g.file.line("\t\treturn")
	g.file.line("\t}")
	g.file.line("\tinited = true")
	g.file.newline()

	wroteInclude := false
	g.module.EnumIncludes(func(inc *style.Module) bool {
		if inc.HasVariables() {
			pkg := PackageName(inc)
			g.file.addImport(g.opts.ImportBase + "/" + pkg)
			g.file.printf("\t%s.Init()\n", pkg)
			wroteInclude = true
		}
		return true
	})
	if wroteInclude {
		g.file.newline()
	}
}

func (g *Generator) writeInit() error {
	g.writeInitHeader()

	if len(g.resources.PxValues()) > 0 {
		g.file.line("\tinitPxValues()")
	}
	if len(g.resources.FontFamilies()) > 0 {
		g.file.line("\tinitFontFamilies()")
	}
	if len(g.resources.PxValues()) > 0 || len(g.resources.FontFamilies()) > 0 {
		g.file.newline()
	}

	var emitErr error
	ok := g.module.EnumVariables(func(v style.Variable) bool {
		expression, err := g.emitter.Assignment(v.Value)
		if err != nil {
			emitErr = err
			return false
		}
		g.file.printf("\t%s = %s\n", exportedName(v.Identifier()), expression)
		return true
	})
	if !ok {
		return emitErr
	}

	g.file.line("}")
	return nil
}

func (g *Generator) writePalette() error {
	model, err := buildPaletteModel(g.module, g.emitter)
	if err != nil {
		return err
	}

	g.file.line("var slotDefs = []" + stylesPkg + ".SlotDef{")
	for _, slot := range model.slots {
		g.file.printf("\t{Name: %q, R: %d, G: %d, B: %d, A: %d, Fallback: %d},\n",
			slot.name, slot.color.R, slot.color.G, slot.color.B, slot.color.A, slot.fallback)
	}
	g.file.line("}")
	g.file.newline()

	g.file.line("var table = " + stylesPkg + ".NewPalette(slotDefs, GetPaletteIndex)")
	g.file.newline()

	g.file.line("// Checksum identifies these compiled definitions. Compare it before")
	g.file.line("// trusting a persisted cache blob.")
	g.file.printf("const Checksum int32 = %d\n", model.checksum)
	g.file.newline()

	for i, slot := range model.slots {
		g.file.printf("func %s() %s.Color { return table.Color(%d) }\n", exportedName(slot.name), stylesPkg, i)
	}
	g.file.newline()

	g.file.body.WriteString(model.dispatch.Compile("GetPaletteIndex"))
	g.file.newline()

	g.writeInitHeader()
	g.file.line("\ttable.Finalize()")
	g.file.line("}")
	g.file.newline()

	g.file.line("// Save serializes the table, four bytes per slot in RGBA order.")
	g.file.line("func Save() []byte { return table.Save() }")
	g.file.newline()
	g.file.line("// Load replaces the table from a cache blob of exactly the saved length.")
	g.file.line("func Load(cache []byte) bool { return table.Load(cache) }")
	g.file.newline()
	g.file.line("// SetColor overwrites one color by name.")
	g.file.line("func SetColor(name []byte, r, g, b, a uint8) bool { return table.SetColor(name, r, g, b, a) }")
	g.file.newline()
	g.file.line("// SetColorFrom copies one loaded color into another by name.")
	g.file.line("func SetColorFrom(name, from []byte) bool { return table.SetColorFrom(name, from) }")
	g.file.newline()
	g.file.line("// Apply copies every loaded slot from another table of the same shape.")
	g.file.line("func Apply(other *" + stylesPkg + ".Palette) { table.Apply(other) }")
	g.file.newline()
	g.file.line("// Table exposes the runtime palette.")
	g.file.line("func Table() *" + stylesPkg + ".Palette { return table }")
	return nil
}

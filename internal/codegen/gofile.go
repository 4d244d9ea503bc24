package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	stylecerrors "github.com/styletools/stylec/pkg/errors"
)

// goFile accumulates one generated source file in memory. Nothing touches
// disk until Commit, so a failing run never leaves a partial artifact.
type goFile struct {
	path    string
	pkg     string
	imports map[string]struct{}
	body    bytes.Buffer
}

func newGoFile(path, pkg string) *goFile {
	return &goFile{path: path, pkg: pkg, imports: make(map[string]struct{})}
}

func (f *goFile) addImport(path string) {
	f.imports[path] = struct{}{}
}

func (f *goFile) printf(format string, args ...any) {
	fmt.Fprintf(&f.body, format, args...)
}

func (f *goFile) line(text string) {
	f.body.WriteString(text)
	f.body.WriteByte('\n')
}

func (f *goFile) newline() {
	f.body.WriteByte('\n')
}

func (f *goFile) render() []byte {
	var out bytes.Buffer
	out.WriteString("// Code generated by stylec. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", f.pkg)

	if len(f.imports) > 0 {
		paths := make([]string, 0, len(f.imports))
		for path := range f.imports {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		if len(paths) == 1 {
			fmt.Fprintf(&out, "import %q\n\n", paths[0])
		} else {
			out.WriteString("import (\n")
			for _, path := range paths {
				fmt.Fprintf(&out, "\t%q\n", path)
			}
			out.WriteString(")\n\n")
		}
	}

	out.Write(f.body.Bytes())
	return out.Bytes()
}

// commit writes the rendered file, skipping the write entirely when the
// existing file already holds identical bytes. New content lands in a
// temporary file first and is renamed into place, so readers never observe
// a half-written artifact. It reports whether a write happened.
func (f *goFile) commit() (bool, error) {
	return writeFileIfChanged(f.path, f.render())
}

func writeFileIfChanged(path string, content []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, stylecerrors.NewAssetError(stylecerrors.CodeIOFailure, path, "could not create output directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return false, stylecerrors.NewAssetError(stylecerrors.CodeIOFailure, path, "could not create temporary file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return false, stylecerrors.NewAssetError(stylecerrors.CodeIOFailure, path, "could not write output", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return false, stylecerrors.NewAssetError(stylecerrors.CodeIOFailure, path, "could not close output", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return false, stylecerrors.NewAssetError(stylecerrors.CodeIOFailure, path, "could not move output into place", err)
	}
	return true, nil
}

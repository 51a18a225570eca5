// Package runtime ships the C++ value library that generated code is
// compiled against. The transpiler emits exactly one include of HeaderName;
// this package embeds the header so the CLI can write it next to the
// generated output.
package runtime

import (
	_ "embed"
	"os"
	"path/filepath"
)

// HeaderName is the file name the generated include directive references.
const HeaderName = "runtime.h"

//go:embed runtime.h
var header []byte

// Header returns the runtime header source.
func Header() []byte {
	out := make([]byte, len(header))
	copy(out, header)
	return out
}

// WriteTo writes the runtime header into dir and returns its path.
func WriteTo(dir string) (string, error) {
	path := filepath.Join(dir, HeaderName)
	if err := os.WriteFile(path, header, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

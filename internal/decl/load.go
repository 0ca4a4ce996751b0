package decl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads declarations from path: a directory or .cue file is loaded as
// CUE, a .yaml or .yml file as YAML.
func Load(path string) ([]Declaration, []error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, []error{&Error{
			Field:   "file",
			Code:    ErrCodeDecode,
			Message: fmt.Sprintf("declarations not found: %s", path),
			Err:     err,
		}}
	}
	if info.IsDir() {
		return LoadCUE(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return LoadCUE(path)
	case ".yaml", ".yml":
		decls, err := LoadYAML(path)
		if err != nil {
			return nil, []error{err}
		}
		return decls, nil
	}
	return nil, []error{&Error{
		Field:   "file",
		Code:    ErrCodeDecode,
		Message: fmt.Sprintf("unsupported declaration file %s (want .cue, .yaml or .yml)", path),
	}}
}

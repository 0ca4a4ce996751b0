package decl

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the YAML document layout:
//
//	declarations:
//	  - name: Percent
//	    repr: uint8
//	    range: 0..=100
type file struct {
	Declarations []Declaration `yaml:"declarations"`
}

// LoadYAML reads declarations from a YAML file. Unknown fields are rejected.
func LoadYAML(path string) ([]Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Field: "file", Code: ErrCodeDecode, Message: fmt.Sprintf("failed to read declarations: %v", err), Err: err}
	}
	return ParseYAML(path, data)
}

// ParseYAML decodes declarations from data; filename is used in positions.
func ParseYAML(filename string, data []byte) ([]Declaration, error) {
	var f file
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, &Error{
			Field:   "file",
			Code:    ErrCodeDecode,
			Message: fmt.Sprintf("failed to parse YAML: %v", err),
			Pos:     Position{File: filename},
			Err:     err,
		}
	}

	// A second pass over the node tree recovers each entry's line.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err == nil {
		for i, n := range declarationNodes(&root) {
			if i < len(f.Declarations) {
				f.Declarations[i].Pos = Position{File: filename, Line: n.Line, Column: n.Column}
			}
		}
	}
	for i := range f.Declarations {
		if !f.Declarations[i].Pos.IsValid() {
			f.Declarations[i].Pos = Position{File: filename}
		}
	}
	return f.Declarations, nil
}

func declarationNodes(root *yaml.Node) []*yaml.Node {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == "declarations" && m.Content[i+1].Kind == yaml.SequenceNode {
			return m.Content[i+1].Content
		}
	}
	return nil
}

package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// The document types below check the TOML type of every value they receive.
// Failures are returned from UnmarshalTOML, so the toml decoder reports them
// as a ParseError carrying the key and its line.

type packDocument struct {
	Modpack toml.Primitive `toml:"modpack"`
	Game    tomlTable      `toml:"game"`
	Sources toml.Primitive `toml:"sources"`
	Files   toml.Primitive `toml:"files"`
}

type modpackDocument struct {
	Name    tomlString `toml:"name"`
	Version tomlString `toml:"version"`
	Summary tomlString `toml:"summary"`
}

type fileDocument struct {
	Path        tomlString  `toml:"path"`
	Sources     tomlStrings `toml:"sources"`
	Version     tomlTable   `toml:"version"`
	Environment tomlString  `toml:"environment"`
}

// tomlString is a string value that remembers whether its key was present
type tomlString struct {
	value string
	set   bool
}

func (s *tomlString) UnmarshalTOML(data interface{}) error {
	v, ok := data.(string)
	if !ok {
		return wrongType("a string", data)
	}
	s.value, s.set = v, true
	return nil
}

func (s tomlString) ptr() *string {
	if !s.set {
		return nil
	}
	v := s.value
	return &v
}

type tomlStrings struct {
	values []string
	set    bool
}

func (s *tomlStrings) UnmarshalTOML(data interface{}) error {
	list, ok := data.([]interface{})
	if !ok {
		return wrongType("an array of strings", data)
	}
	values := make([]string, len(list))
	for i, item := range list {
		v, ok := item.(string)
		if !ok {
			return fmt.Errorf("element %d: %w", i, wrongType("a string", item))
		}
		values[i] = v
	}
	s.values, s.set = values, true
	return nil
}

// tomlTable is a table kept in raw form, for tagged and untagged unions
type tomlTable struct {
	values map[string]interface{}
	set    bool
}

func (t *tomlTable) UnmarshalTOML(data interface{}) error {
	m, ok := data.(map[string]interface{})
	if !ok {
		return wrongType("a table", data)
	}
	t.values, t.set = m, true
	return nil
}

func wrongType(expected string, data interface{}) error {
	return fmt.Errorf("expected %s, got %s", expected, tomlTypeName(data))
}

func tomlTypeName(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case time.Time:
		return "datetime"
	case []interface{}, []map[string]interface{}:
		return "array"
	case map[string]interface{}:
		return "table"
	}
	return fmt.Sprintf("%T", v)
}

// documentError converts an error from the toml decoder into a StructuralError
func documentError(err error) error {
	var perr toml.ParseError
	if !errors.As(err, &perr) {
		return &StructuralError{Err: err}
	}
	return &StructuralError{Path: perr.LastKey, Line: perr.Position.Line, Err: errors.New(perr.Message)}
}

// entryError relocates a decoding error inside an array of tables to the entry at loc.
// The decoder does not tell entries apart, so the line is dropped.
func entryError(err error, array, loc string) error {
	var sErr *StructuralError
	if errors.As(err, &sErr) && (sErr.Path == array || strings.HasPrefix(sErr.Path, array+".")) {
		sErr.Path = loc + strings.TrimPrefix(sErr.Path, array)
		sErr.Line = 0
	}
	return err
}

// decodeTable decodes the table held by prim into out, which may be nil.
// A value that is not a table is reported at path.
func decodeTable(md *toml.MetaData, prim toml.Primitive, path string, out interface{}) (map[string]interface{}, error) {
	var raw interface{}
	if err := md.PrimitiveDecode(prim, &raw); err != nil {
		return nil, documentError(err)
	}
	table, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &StructuralError{Path: path, Err: wrongType("a table", raw)}
	}
	if out != nil {
		if err := md.PrimitiveDecode(prim, out); err != nil {
			return nil, documentError(err)
		}
	}
	return table, nil
}

// decodeTables splits an array of tables into one Primitive per entry
func decodeTables(md *toml.MetaData, prim toml.Primitive, path string) ([]toml.Primitive, error) {
	var raw interface{}
	if err := md.PrimitiveDecode(prim, &raw); err != nil {
		return nil, documentError(err)
	}
	switch raw.(type) {
	case []map[string]interface{}, []interface{}:
	default:
		return nil, &StructuralError{Path: path, Err: wrongType("an array of tables", raw)}
	}
	var entries []toml.Primitive
	if err := md.PrimitiveDecode(prim, &entries); err != nil {
		return nil, documentError(err)
	}
	return entries, nil
}

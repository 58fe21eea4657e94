package core

import (
	"errors"
	"maps"
	"slices"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// tagKey is the discriminant field of every tagged union in the pack format
const tagKey = "type"

// tableBody is a raw table and its location in the document
type tableBody struct {
	path   string
	values map[string]interface{}
	// unknown collects the keys of the table no decoder used
	unknown *[]string
}

// tagDecoder turns the body of a tagged table into a typed value
type tagDecoder[T any] func(body tableBody) (T, error)

// decodeTagged reads the type key of a table and hands the table to the matching decoder
func decodeTagged[T any](body tableBody, decoders map[string]tagDecoder[T]) (T, error) {
	var zero T
	rawTag, ok := body.values[tagKey]
	if !ok {
		return zero, missingField(body.at(tagKey))
	}
	tag, ok := rawTag.(string)
	if !ok {
		return zero, &StructuralError{Path: body.at(tagKey), Err: wrongType("a string", rawTag)}
	}
	decoder, ok := decoders[tag]
	if !ok {
		return zero, &UnknownVariantError{Path: body.at(tagKey), Value: tag, Expected: sortedKeys(decoders)}
	}
	return decoder(body)
}

func (b tableBody) at(key string) string {
	return joinPath(b.path, key)
}

// decode decodes the table into out, which is a pointer to a struct with mapstructure tags.
// Keys must match their tag exactly; keys the struct does not name are recorded as unknown.
func (b tableBody) decode(out interface{}) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   out,
		Metadata: &md,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(b.values); err != nil {
		var mErr *mapstructure.Error
		if errors.As(err, &mErr) && len(mErr.Errors) == 1 {
			err = errors.New(mErr.Errors[0])
		}
		return &StructuralError{Path: b.path, Err: err}
	}
	if b.unknown != nil {
		for _, key := range md.Unused {
			if key != tagKey {
				*b.unknown = append(*b.unknown, b.at(key))
			}
		}
	}
	return nil
}

// parseToken accepts only the exact lowercase spelling of one of the allowed values
func parseToken[T ~string](path string, raw string, allowed ...T) (T, error) {
	for _, v := range allowed {
		if raw == string(v) {
			return v, nil
		}
	}
	expected := make([]string, len(allowed))
	for i, v := range allowed {
		expected[i] = string(v)
	}
	var zero T
	return zero, &UnknownVariantError{Path: path, Value: raw, Expected: expected}
}

// sortedKeys returns the keys of a map in ascending order, for reproducible output
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

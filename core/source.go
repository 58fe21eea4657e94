package core

// PackSource is a named provider of files, declared under [sources.<name>]
type PackSource interface {
	// SourceType is the value of the type key for this kind of source
	SourceType() string
	isPackSource()
}

// LabrinthV1Source is a Modrinth-compatible (Labrinth v1) API endpoint
type LabrinthV1Source struct {
	URL string
}

func (LabrinthV1Source) SourceType() string { return "labrinth.v1" }
func (LabrinthV1Source) isPackSource()      {}

// sourceDecoders stores a decoder for every recognised source type
var sourceDecoders = map[string]tagDecoder[PackSource]{
	"labrinth.v1": func(body tableBody) (PackSource, error) {
		var raw struct {
			URL *string `mapstructure:"url"`
		}
		if err := body.decode(&raw); err != nil {
			return nil, err
		}
		if raw.URL == nil {
			return nil, missingField(body.at("url"))
		}
		return LabrinthV1Source{URL: *raw.URL}, nil
	},
}

// SourceSet is the set of source names a file may be fetched from
type SourceSet map[string]struct{}

// NewSourceSet builds a set from names; duplicates collapse
func NewSourceSet(names ...string) SourceSet {
	s := make(SourceSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set
func (s SourceSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members of the set in ascending order
func (s SourceSet) Names() []string {
	return sortedKeys(s)
}

func (s SourceSet) Len() int {
	return len(s)
}

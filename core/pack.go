package core

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Pack stores the modpack definition, usually in pack.toml.
// A Pack is not modified after Parse returns it.
type Pack struct {
	Metadata PackMetadata
	Game     PackGame
	// Sources maps a user-chosen name to a source; use SourceNames for a stable order
	Sources map[string]PackSource
	// Files are in document order; duplicate paths are kept
	Files []PackFile

	unrecognized []string
}

// PackMetadata is the [modpack] table
type PackMetadata struct {
	Name    string
	Version string
	Summary *string
}

// PackFile is one [[files]] entry
type PackFile struct {
	// Path is relative to the pack root, in forward slash format
	Path string
	// Sources restricts which sources the file may come from; nil means the key was absent
	Sources     SourceSet
	Version     PackVersion
	Environment PackEnv
}

// Parse decodes a pack document. Every error it returns is a *StructuralError,
// *UnknownVariantError or *ConstraintSyntaxError.
func Parse(document string) (Pack, error) {
	var doc packDocument
	md, err := toml.Decode(document, &doc)
	if err != nil {
		return Pack{}, documentError(err)
	}

	var pack Pack
	var unknown []string

	if !md.IsDefined("modpack") {
		return Pack{}, missingField("modpack")
	}
	var meta modpackDocument
	if _, err := decodeTable(&md, doc.Modpack, "modpack", &meta); err != nil {
		return Pack{}, err
	}
	if !meta.Name.set {
		return Pack{}, missingField("modpack.name")
	}
	if !meta.Version.set {
		return Pack{}, missingField("modpack.version")
	}
	pack.Metadata = PackMetadata{
		Name:    meta.Name.value,
		Version: meta.Version.value,
		Summary: meta.Summary.ptr(),
	}

	if !doc.Game.set {
		return Pack{}, missingField("game")
	}
	pack.Game, err = resolveGame("game", doc.Game.values)
	if err != nil {
		return Pack{}, err
	}

	var sources map[string]tomlTable
	if md.IsDefined("sources") {
		if _, err := decodeTable(&md, doc.Sources, "sources", &sources); err != nil {
			return Pack{}, err
		}
	}
	pack.Sources = make(map[string]PackSource, len(sources))
	for _, name := range sortedKeys(sources) {
		body := tableBody{path: joinPath("sources", name), values: sources[name].values, unknown: &unknown}
		src, err := decodeTagged(body, sourceDecoders)
		if err != nil {
			return Pack{}, err
		}
		pack.Sources[name] = src
	}

	var entries []toml.Primitive
	if md.IsDefined("files") {
		entries, err = decodeTables(&md, doc.Files, "files")
		if err != nil {
			return Pack{}, err
		}
	}
	// keys of every entry, to place the undecoded keys the toml decoder reports
	entryKeys := make([]map[string]interface{}, len(entries))
	pack.Files = make([]PackFile, 0, len(entries))
	for i, entry := range entries {
		loc := indexPath("files", i)
		var f fileDocument
		entryKeys[i], err = decodeTable(&md, entry, loc, &f)
		if err != nil {
			return Pack{}, entryError(err, "files", loc)
		}
		file, err := f.packFile(loc, &unknown)
		if err != nil {
			return Pack{}, err
		}
		pack.Files = append(pack.Files, file)
	}

	for _, k := range md.Undecoded() {
		if len(k) < 2 || k[0] != "files" {
			unknown = append(unknown, k.String())
			continue
		}
		for i, keys := range entryKeys {
			if _, ok := keys[k[1]]; ok {
				unknown = append(unknown, joinPath(indexPath("files", i), k[1:].String()))
			}
		}
	}
	slices.Sort(unknown)
	pack.unrecognized = slices.Compact(unknown)
	return pack, nil
}

func (f fileDocument) packFile(loc string, unknown *[]string) (PackFile, error) {
	if !f.Path.set {
		return PackFile{}, missingField(joinPath(loc, "path"))
	}
	if err := checkRelativePath(f.Path.value); err != nil {
		return PackFile{}, &StructuralError{Path: joinPath(loc, "path"), Err: err}
	}
	file := PackFile{Path: f.Path.value, Environment: DefaultEnv()}

	if f.Sources.set {
		file.Sources = NewSourceSet(f.Sources.values...)
	}

	if !f.Version.set {
		return PackFile{}, missingField(joinPath(loc, "version"))
	}
	var err error
	body := tableBody{path: joinPath(loc, "version"), values: f.Version.values, unknown: unknown}
	file.Version, err = decodeTagged(body, versionDecoders)
	if err != nil {
		return PackFile{}, err
	}

	if f.Environment.set {
		file.Environment, err = parseEnv(joinPath(loc, "environment"), f.Environment.value)
		if err != nil {
			return PackFile{}, err
		}
	}
	return file, nil
}

func checkRelativePath(p string) error {
	if p == "" {
		return errors.New("path must not be empty")
	}
	if path.IsAbs(p) || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return fmt.Errorf("path %q must be relative to the pack", p)
	}
	if strings.Contains(p, `\`) {
		return fmt.Errorf("path %q must use forward slashes", p)
	}
	return nil
}

// SourceNames returns the names of the pack's sources in ascending order
func (pack Pack) SourceNames() []string {
	return sortedKeys(pack.Sources)
}

// Source looks up a source by name
func (pack Pack) Source(name string) (PackSource, bool) {
	src, ok := pack.Sources[name]
	return src, ok
}

// MissingSources returns the source names referenced by files that the pack does not define
func (pack Pack) MissingSources() []string {
	missing := make(map[string]struct{})
	for _, f := range pack.Files {
		for name := range f.Sources {
			if _, ok := pack.Sources[name]; !ok {
				missing[name] = struct{}{}
			}
		}
	}
	return sortedKeys(missing)
}

// Unrecognized returns the keys of the document that are not part of the pack format, in ascending order
func (pack Pack) Unrecognized() []string {
	return slices.Clone(pack.unrecognized)
}

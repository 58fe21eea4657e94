package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"
)

// ManifestFormatVersion is the manifest schema version written by this package
const ManifestFormatVersion = 1

// ManifestGameMinecraft is the game identifier for Minecraft packs
const ManifestGameMinecraft = "minecraft"

// Values installers understand for the client and server sides of ManifestEnv
const (
	SideRequired    = "required"
	SideOptional    = "optional"
	SideUnsupported = "unsupported"
)

// Manifest is the resolved, installer-facing description of a pack, written as JSON.
// Render does not modify the value it is given.
type Manifest struct {
	FormatVersion uint32  `json:"formatVersion"`
	Game          string  `json:"game"`
	VersionID     string  `json:"versionId"`
	Name          string  `json:"name"`
	Summary       *string `json:"summary"`
	// Files are written in order
	Files []ManifestFile `json:"files"`
	// Dependencies map a dependency name (e.g. minecraft) to its version
	Dependencies map[string]string `json:"dependencies"`
}

type ManifestFile struct {
	Path   string         `json:"path"`
	Hashes ManifestHashes `json:"hashes"`
	// Env is nil when the file has no environment restriction
	Env *ManifestEnv `json:"env"`
	// Downloads are URLs in order of preference
	Downloads []string `json:"downloads"`
}

type ManifestHashes struct {
	SHA1 string `json:"sha1"`
}

// ManifestEnv holds a token such as "required" for each side. Any string is accepted.
type ManifestEnv struct {
	Client string `json:"client"`
	Server string `json:"server"`
}

// ManifestEnvFor maps a pack environment onto manifest sides. It never returns nil:
// a file for both sides is required on both.
func ManifestEnvFor(env PackEnv) *ManifestEnv {
	switch env {
	case EnvClient:
		return &ManifestEnv{Client: SideRequired, Server: SideUnsupported}
	case EnvServer:
		return &ManifestEnv{Client: SideUnsupported, Server: SideRequired}
	default:
		return &ManifestEnv{Client: SideRequired, Server: SideRequired}
	}
}

var errInvalidUTF8 = errors.New("string is not valid UTF-8")

// Render returns the JSON document for a manifest
func Render(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteManifest(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteManifest writes the JSON document for a manifest to w.
// Nothing is written if the manifest holds a value that cannot be represented.
func WriteManifest(w io.Writer, m Manifest) error {
	if err := checkManifest(m); err != nil {
		return err
	}

	out := m
	out.Files = make([]ManifestFile, len(m.Files))
	for i, f := range m.Files {
		if f.Downloads == nil {
			f.Downloads = []string{}
		}
		out.Files[i] = f
	}
	if out.Dependencies == nil {
		out.Dependencies = map[string]string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// checkManifest rejects strings that encoding/json would silently replace with U+FFFD
func checkManifest(m Manifest) error {
	check := func(path, s string) error {
		if !utf8.ValidString(s) {
			return &UnrepresentableValueError{Path: path, Err: errInvalidUTF8}
		}
		return nil
	}
	fields := []struct{ path, value string }{
		{"game", m.Game},
		{"versionId", m.VersionID},
		{"name", m.Name},
	}
	if m.Summary != nil {
		fields = append(fields, struct{ path, value string }{"summary", *m.Summary})
	}
	for _, f := range fields {
		if err := check(f.path, f.value); err != nil {
			return err
		}
	}

	for i, f := range m.Files {
		loc := indexPath("files", i)
		if err := check(joinPath(loc, "path"), f.Path); err != nil {
			return err
		}
		if err := check(joinPath(loc, "hashes.sha1"), f.Hashes.SHA1); err != nil {
			return err
		}
		if f.Env != nil {
			if err := check(joinPath(loc, "env.client"), f.Env.Client); err != nil {
				return err
			}
			if err := check(joinPath(loc, "env.server"), f.Env.Server); err != nil {
				return err
			}
		}
		for j, u := range f.Downloads {
			if err := check(indexPath(joinPath(loc, "downloads"), j), u); err != nil {
				return err
			}
		}
	}

	for _, k := range sortedKeys(m.Dependencies) {
		if err := check(joinPath("dependencies", k), k); err != nil {
			return err
		}
		if err := check(joinPath("dependencies", k), m.Dependencies[k]); err != nil {
			return err
		}
	}
	return nil
}

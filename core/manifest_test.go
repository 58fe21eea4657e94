package core

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/camelcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleManifest() Manifest {
	return Manifest{
		FormatVersion: ManifestFormatVersion,
		Game:          ManifestGameMinecraft,
		VersionID:     "deadbeef",
		Name:          "Example Modpack",
		Summary:       strPtr("Lorem ipsum dolor sit amet"),
		Files: []ManifestFile{{
			Path:      "mods/example.jar",
			Hashes:    ManifestHashes{SHA1: strings.Repeat("a", 40)},
			Env:       &ManifestEnv{Client: SideRequired, Server: SideUnsupported},
			Downloads: []string{"https://example.com/example.jar"},
		}},
		Dependencies: map[string]string{"minecraft": "1.17.1"},
	}
}

func TestRenderManifest(t *testing.T) {
	out, err := Render(exampleManifest())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"formatVersion": 1,
		"game": "minecraft",
		"versionId": "deadbeef",
		"name": "Example Modpack",
		"summary": "Lorem ipsum dolor sit amet",
		"files": [{
			"path": "mods/example.jar",
			"downloads": ["https://example.com/example.jar"],
			"hashes": {"sha1": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
			"env": {"client": "required", "server": "unsupported"}
		}],
		"dependencies": {"minecraft": "1.17.1"}
	}`, string(out))
}

func TestRenderAbsentOptionalsAsNull(t *testing.T) {
	m := exampleManifest()
	m.Summary = nil
	m.Files[0].Env = nil

	out, err := Render(m)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &doc))
	summary, ok := doc["summary"]
	assert.True(t, ok, "summary key should be present")
	assert.Nil(t, summary)

	file := doc["files"].([]interface{})[0].(map[string]interface{})
	env, ok := file["env"]
	assert.True(t, ok, "env key should be present")
	assert.Nil(t, env)
}

func TestRenderEmptySummaryIsNotAbsent(t *testing.T) {
	m := exampleManifest()
	m.Summary = strPtr("")
	out, err := Render(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"summary": ""`)
}

func TestRenderPreservesOrder(t *testing.T) {
	m := exampleManifest()
	m.Files = []ManifestFile{
		{Path: "mods/z.jar", Downloads: []string{"https://c.example/z", "https://a.example/z", "https://b.example/z"}},
		{Path: "mods/a.jar"},
	}
	out, err := Render(m)
	require.NoError(t, err)

	var doc Manifest
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.Files, 2)
	assert.Equal(t, "mods/z.jar", doc.Files[0].Path)
	assert.Equal(t, []string{"https://c.example/z", "https://a.example/z", "https://b.example/z"}, doc.Files[0].Downloads)
	assert.Equal(t, []string{}, doc.Files[1].Downloads)
}

func TestRenderRoundTrip(t *testing.T) {
	m := exampleManifest()
	m.Dependencies = map[string]string{"minecraft": "1.17.1", "fabric-loader": "0.9.0", "forge": "37.0.0"}
	out, err := Render(m)
	require.NoError(t, err)

	var back Manifest
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, m, back)
}

func TestRenderIsReproducible(t *testing.T) {
	m := exampleManifest()
	m.Dependencies = map[string]string{"minecraft": "1.17.1", "fabric-loader": "0.9.0", "a": "1"}
	first, err := Render(m)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Render(m)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
	assert.Less(t, strings.Index(string(first), `"a": "1"`), strings.Index(string(first), `"fabric-loader": "0.9.0"`))
	assert.Less(t, strings.Index(string(first), `"fabric-loader": "0.9.0"`), strings.Index(string(first), `"minecraft": "1.17.1"`))
}

func TestRenderNilCollections(t *testing.T) {
	out, err := Render(Manifest{FormatVersion: 1, Game: "minecraft"})
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, []interface{}{}, doc["files"])
	assert.Equal(t, map[string]interface{}{}, doc["dependencies"])
}

func TestRenderDoesNotModifyInput(t *testing.T) {
	m := exampleManifest()
	m.Files = append(m.Files, ManifestFile{Path: "mods/b.jar"})
	_, err := Render(m)
	require.NoError(t, err)
	assert.Nil(t, m.Files[1].Downloads)
}

func TestRenderDoesNotEscapeURLs(t *testing.T) {
	m := exampleManifest()
	m.Files[0].Downloads = []string{"https://example.com/dl?a=1&b=<2>"}
	out, err := Render(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), "https://example.com/dl?a=1&b=<2>")
	assert.True(t, strings.HasSuffix(string(out), "\n"))
	assert.Contains(t, string(out), "\n    \"formatVersion\": 1,")
}

func TestRenderRejectsInvalidUTF8(t *testing.T) {
	bad := string([]byte{0xff, 0xfe})
	tests := []struct {
		name   string
		mutate func(m *Manifest)
		path   string
	}{
		{"name", func(m *Manifest) { m.Name = bad }, "name"},
		{"summary", func(m *Manifest) { m.Summary = &bad }, "summary"},
		{"path", func(m *Manifest) { m.Files[0].Path = "mods/" + bad }, "files[0].path"},
		{"env", func(m *Manifest) { m.Files[0].Env.Server = bad }, "files[0].env.server"},
		{"download", func(m *Manifest) { m.Files[0].Downloads = append(m.Files[0].Downloads, bad) }, "files[0].downloads[1]"},
		{"dependency", func(m *Manifest) { m.Dependencies["minecraft"] = bad }, "dependencies.minecraft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := exampleManifest()
			tt.mutate(&m)
			var buf strings.Builder
			err := WriteManifest(&buf, m)
			var uErr *UnrepresentableValueError
			require.ErrorAs(t, err, &uErr)
			assert.Equal(t, tt.path, uErr.Path)
			assert.Empty(t, buf.String())
		})
	}
}

// wireName is the camelCase form of a Go field name, e.g. VersionID -> versionId
func wireName(field string) string {
	parts := camelcase.Split(field)
	for i, p := range parts {
		if i == 0 {
			parts[i] = strings.ToLower(p)
		} else {
			parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		}
	}
	return strings.Join(parts, "")
}

func TestManifestFieldNamesAreCamelCase(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf(Manifest{}),
		reflect.TypeOf(ManifestFile{}),
		reflect.TypeOf(ManifestHashes{}),
		reflect.TypeOf(ManifestEnv{}),
	} {
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			tag := strings.Split(f.Tag.Get("json"), ",")[0]
			assert.Equal(t, wireName(f.Name), tag, "%s.%s", typ.Name(), f.Name)
		}
	}
}

func TestManifestEnvFor(t *testing.T) {
	assert.Equal(t, &ManifestEnv{Client: "required", Server: "required"}, ManifestEnvFor(EnvBoth))
	assert.Equal(t, &ManifestEnv{Client: "required", Server: "unsupported"}, ManifestEnvFor(EnvClient))
	assert.Equal(t, &ManifestEnv{Client: "unsupported", Server: "required"}, ManifestEnvFor(EnvServer))
	assert.Equal(t, ManifestEnvFor(DefaultEnv()), ManifestEnvFor(EnvBoth))
}

func TestGameDependencies(t *testing.T) {
	assert.Equal(t, map[string]string{"minecraft": "1.17.1"}, VanillaGame{Minecraft: "1.17.1"}.Dependencies())
	assert.Equal(t, map[string]string{"minecraft": "1.17.1", "forge": "37.0.0"},
		ForgeGame{Minecraft: "1.17.1", Forge: "37.0.0"}.Dependencies())
	assert.Equal(t, map[string]string{"minecraft": "1.17.1", "fabric-loader": "0.9.0"},
		FabricGame{Minecraft: "1.17.1", FabricLoader: "0.9.0"}.Dependencies())
	assert.Equal(t, "", VanillaGame{}.Loader())
	assert.Equal(t, "forge", ForgeGame{}.Loader())
	assert.Equal(t, "fabric-loader", FabricGame{}.Loader())
}

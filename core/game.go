package core

import (
	"fmt"
	"slices"
	"strings"
)

// PackGame identifies the game and mod loader a pack targets. It is one of
// VanillaGame, ForgeGame or FabricGame; the [game] table carries no tag, the
// variant follows from which keys are present.
type PackGame interface {
	MinecraftVersion() string
	// Loader is the dependency name of the mod loader, or "" for vanilla
	Loader() string
	// Dependencies are the manifest dependencies implied by the game
	Dependencies() map[string]string
	isPackGame()
}

// Dependency names, as used in manifests
const (
	DependencyMinecraft    = "minecraft"
	DependencyForge        = "forge"
	DependencyFabricLoader = "fabric-loader"
)

type VanillaGame struct {
	Minecraft string
}

type ForgeGame struct {
	Minecraft string
	Forge     string
}

type FabricGame struct {
	Minecraft    string
	FabricLoader string
}

func (g VanillaGame) MinecraftVersion() string { return g.Minecraft }
func (g ForgeGame) MinecraftVersion() string   { return g.Minecraft }
func (g FabricGame) MinecraftVersion() string  { return g.Minecraft }

func (VanillaGame) Loader() string { return "" }
func (ForgeGame) Loader() string   { return DependencyForge }
func (FabricGame) Loader() string  { return DependencyFabricLoader }

func (g VanillaGame) Dependencies() map[string]string {
	return map[string]string{DependencyMinecraft: g.Minecraft}
}

func (g ForgeGame) Dependencies() map[string]string {
	return map[string]string{DependencyMinecraft: g.Minecraft, DependencyForge: g.Forge}
}

func (g FabricGame) Dependencies() map[string]string {
	return map[string]string{DependencyMinecraft: g.Minecraft, DependencyFabricLoader: g.FabricLoader}
}

func (VanillaGame) isPackGame() {}
func (ForgeGame) isPackGame()   {}
func (FabricGame) isPackGame()  {}

// gameShape is one candidate layout of the [game] table
type gameShape struct {
	fields []string
	build  func(values map[string]string) PackGame
}

// gameShapes is checked in order, most specific first
var gameShapes = []gameShape{
	{
		fields: []string{DependencyMinecraft, DependencyFabricLoader},
		build: func(v map[string]string) PackGame {
			return FabricGame{Minecraft: v[DependencyMinecraft], FabricLoader: v[DependencyFabricLoader]}
		},
	},
	{
		fields: []string{DependencyMinecraft, DependencyForge},
		build: func(v map[string]string) PackGame {
			return ForgeGame{Minecraft: v[DependencyMinecraft], Forge: v[DependencyForge]}
		},
	},
	{
		fields: []string{DependencyMinecraft},
		build: func(v map[string]string) PackGame {
			return VanillaGame{Minecraft: v[DependencyMinecraft]}
		},
	},
}

// matches reports whether the keys present are exactly the fields of the shape
func (s gameShape) matches(keys []string) bool {
	if len(keys) != len(s.fields) {
		return false
	}
	for _, f := range s.fields {
		if !slices.Contains(keys, f) {
			return false
		}
	}
	return true
}

func resolveGame(path string, table map[string]interface{}) (PackGame, error) {
	values := make(map[string]string, len(table))
	for _, k := range sortedKeys(table) {
		s, ok := table[k].(string)
		if !ok {
			return nil, &StructuralError{Path: joinPath(path, k), Err: wrongType("a string", table[k])}
		}
		values[k] = s
	}
	keys := sortedKeys(values)

	var matched []gameShape
	for _, shape := range gameShapes {
		if shape.matches(keys) {
			matched = append(matched, shape)
		}
	}
	switch len(matched) {
	case 1:
		return matched[0].build(values), nil
	case 0:
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("keys [%s] do not describe a game, expected one of: %s",
			strings.Join(keys, ", "), describeGameShapes())}
	default:
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("keys [%s] describe more than one game", strings.Join(keys, ", "))}
	}
}

func describeGameShapes() string {
	shapes := make([]string, len(gameShapes))
	for i, s := range gameShapes {
		shapes[i] = "[" + strings.Join(s.fields, ", ") + "]"
	}
	return strings.Join(shapes, ", ")
}

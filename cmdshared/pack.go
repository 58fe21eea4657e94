package cmdshared

import (
	"fmt"
	"os"

	"github.com/packwiz/athena/core"
)

// LoadPack reads and parses the pack definition at path
func LoadPack(path string) (core.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Pack{}, err
	}
	pack, err := core.Parse(string(data))
	if err != nil {
		return core.Pack{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return pack, nil
}

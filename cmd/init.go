package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/camelcase"
	"github.com/igorsobreira/titlecase"
	"github.com/packwiz/athena/cmdshared"
	"github.com/packwiz/athena/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultLabrinthURL = "https://api.modrinth.com"

type packTemplate struct {
	Modpack struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Summary string `toml:"summary,omitempty"`
	} `toml:"modpack"`
	Game    map[string]string         `toml:"game"`
	Sources map[string]sourceTemplate `toml:"sources,omitempty"`
}

type sourceTemplate struct {
	Type string `toml:"type"`
	URL  string `toml:"url"`
}

type initOptions struct {
	Name         string
	Version      string
	Summary      string
	MCVersion    string
	FabricLoader string
	Forge        string
	Modrinth     bool
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new modpack definition",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		packFile := viper.GetString("pack-file")
		_, err := os.Stat(packFile)
		if err == nil && !viper.GetBool("init.reinit") {
			Logger.Error("Modpack definition already exists, use -r to override!", "path", packFile)
			os.Exit(1)
		} else if err != nil && !os.IsNotExist(err) {
			Logger.Error("Error checking pack file", "err", err)
			os.Exit(1)
		}

		opts := initOptions{
			Name:         viper.GetString("init.name"),
			Version:      viper.GetString("init.version"),
			Summary:      viper.GetString("init.summary"),
			MCVersion:    viper.GetString("init.mc-version"),
			FabricLoader: viper.GetString("init.fabric-loader"),
			Forge:        cmdshared.GetRawForgeVersion(viper.GetString("init.forge")),
			Modrinth:     viper.GetBool("init.modrinth"),
		}

		if len(opts.Name) == 0 {
			// Get current file directory name
			wd, err := os.Getwd()
			directoryName := "."
			if err == nil {
				directoryName = filepath.Base(wd)
			}
			if directoryName != "." && len(directoryName) > 0 {
				name := packNameFromDirectory(directoryName)
				opts.Name = cmdshared.ReadValue("Modpack name ["+name+"]: ", name)
			} else {
				opts.Name = cmdshared.ReadValue("Modpack name: ", "")
			}
		}
		if len(opts.Version) == 0 {
			opts.Version = cmdshared.ReadValue("Version [1.0.0]: ", "1.0.0")
		}
		if len(opts.MCVersion) == 0 {
			opts.MCVersion = cmdshared.ReadValue("Minecraft version: ", "")
			if len(opts.MCVersion) == 0 {
				Logger.Error("A Minecraft version is required")
				os.Exit(1)
			}
		}
		if len(opts.FabricLoader) == 0 && len(opts.Forge) == 0 && !viper.GetBool("init.vanilla") {
			switch strings.ToLower(cmdshared.ReadValue("Mod loader (none, fabric, forge) [none]: ", "none")) {
			case "none":
			case "fabric":
				opts.FabricLoader = cmdshared.ReadValue("Fabric loader version: ", "")
			case "forge":
				opts.Forge = cmdshared.GetRawForgeVersion(cmdshared.ReadValue("Forge version: ", ""))
			default:
				Logger.Error("Given mod loader is not supported! The following mod loaders are supported: none, fabric, forge")
				os.Exit(1)
			}
		}
		if !cmd.Flags().Changed("modrinth") && !opts.Modrinth {
			opts.Modrinth = cmdshared.PromptYesNo("Add Modrinth as a source? [Y/n] ")
		}

		data, err := renderPackTemplate(opts)
		if err != nil {
			Logger.Error("Failed to create modpack definition", "err", err)
			os.Exit(1)
		}
		err = os.WriteFile(packFile, data, 0644)
		if err != nil {
			Logger.Error("Failed to write modpack definition", "err", err)
			os.Exit(1)
		}
		fmt.Println(packFile + " created!")
	},
}

// packNameFromDirectory turns a directory name into a space-separated proper name
func packNameFromDirectory(directoryName string) string {
	return titlecase.Title(strings.ReplaceAll(strings.ReplaceAll(strings.Join(camelcase.Split(directoryName), " "), " - ", " "), " _ ", " "))
}

// renderPackTemplate encodes a starter pack definition and checks that it parses
func renderPackTemplate(opts initOptions) ([]byte, error) {
	if len(opts.FabricLoader) > 0 && len(opts.Forge) > 0 {
		return nil, fmt.Errorf("a pack cannot use both Fabric loader and Forge")
	}

	var tmpl packTemplate
	tmpl.Modpack.Name = opts.Name
	tmpl.Modpack.Version = opts.Version
	tmpl.Modpack.Summary = opts.Summary
	tmpl.Game = map[string]string{core.DependencyMinecraft: opts.MCVersion}
	if len(opts.FabricLoader) > 0 {
		tmpl.Game[core.DependencyFabricLoader] = opts.FabricLoader
	}
	if len(opts.Forge) > 0 {
		tmpl.Game[core.DependencyForge] = opts.Forge
	}
	if opts.Modrinth {
		tmpl.Sources = map[string]sourceTemplate{
			"modrinth": {Type: core.LabrinthV1Source{}.SourceType(), URL: defaultLabrinthURL},
		}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	// Disable indentation
	enc.Indent = ""
	if err := enc.Encode(tmpl); err != nil {
		return nil, err
	}

	if _, err := core.Parse(buf.String()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("name", "", "The name of the modpack (omit to define interactively)")
	_ = viper.BindPFlag("init.name", initCmd.Flags().Lookup("name"))
	initCmd.Flags().String("version", "", "The version of the modpack (omit to define interactively)")
	_ = viper.BindPFlag("init.version", initCmd.Flags().Lookup("version"))
	initCmd.Flags().String("summary", "", "A short description of the modpack")
	_ = viper.BindPFlag("init.summary", initCmd.Flags().Lookup("summary"))
	initCmd.Flags().String("mc-version", "", "The Minecraft version to use (omit to define interactively)")
	_ = viper.BindPFlag("init.mc-version", initCmd.Flags().Lookup("mc-version"))
	initCmd.Flags().String("fabric-loader", "", "The Fabric loader version to use")
	_ = viper.BindPFlag("init.fabric-loader", initCmd.Flags().Lookup("fabric-loader"))
	initCmd.Flags().String("forge", "", "The Forge version to use")
	_ = viper.BindPFlag("init.forge", initCmd.Flags().Lookup("forge"))
	initCmd.Flags().Bool("vanilla", false, "Create a pack without a mod loader")
	_ = viper.BindPFlag("init.vanilla", initCmd.Flags().Lookup("vanilla"))
	initCmd.MarkFlagsMutuallyExclusive("fabric-loader", "forge", "vanilla")
	initCmd.Flags().Bool("modrinth", false, "Add Modrinth as a source")
	_ = viper.BindPFlag("init.modrinth", initCmd.Flags().Lookup("modrinth"))
	initCmd.Flags().BoolP("reinit", "r", false, "Recreate the pack file if it already exists, rather than exiting")
	_ = viper.BindPFlag("init.reinit", initCmd.Flags().Lookup("reinit"))
}

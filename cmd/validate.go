package cmd

import (
	"fmt"
	"os"

	"github.com/packwiz/athena/cmdshared"
	"github.com/packwiz/athena/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [pack file]",
	Short: "Check that a modpack definition is valid",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		packFile := viper.GetString("pack-file")
		if len(args) > 0 {
			packFile = args[0]
		}

		Logger.Debug("Loading modpack", "path", packFile)
		pack, err := cmdshared.LoadPack(packFile)
		if err != nil {
			Logger.Error(err)
			os.Exit(1)
		}

		warnings := packWarnings(pack)
		for _, w := range warnings {
			Logger.Warn(w)
		}

		Logger.Info("Modpack loaded",
			"name", pack.Metadata.Name,
			"version", pack.Metadata.Version,
			"minecraft", pack.Game.MinecraftVersion(),
			"loader", loaderName(pack.Game),
			"sources", len(pack.Sources),
			"files", len(pack.Files))

		if len(warnings) > 0 && viper.GetBool("validate.strict") {
			Logger.Error("Modpack has warnings", "count", len(warnings))
			os.Exit(1)
		}
		fmt.Println(packFile + " is valid!")
	},
}

// packWarnings lists problems that do not stop a pack from loading
func packWarnings(pack core.Pack) []string {
	var warnings []string
	for _, k := range pack.Unrecognized() {
		warnings = append(warnings, fmt.Sprintf("Unknown key %q is ignored", k))
	}
	for _, name := range pack.MissingSources() {
		warnings = append(warnings, fmt.Sprintf("Source %q is used by a file but not defined in [sources]", name))
	}
	return warnings
}

func loaderName(game core.PackGame) string {
	if game.Loader() == "" {
		return "none"
	}
	return game.Loader()
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("strict", false, "Treat warnings as errors")
	_ = viper.BindPFlag("validate.strict", validateCmd.Flags().Lookup("strict"))
}

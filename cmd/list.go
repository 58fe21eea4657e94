package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/packwiz/athena/cmdshared"
	"github.com/packwiz/athena/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// sideFlag is a --side value, restricted to the valid pack environments
type sideFlag struct {
	env core.PackEnv
}

var _ pflag.Value = (*sideFlag)(nil)

func (s *sideFlag) String() string {
	return string(s.env)
}

func (s *sideFlag) Set(value string) error {
	env, err := core.ParseEnv(value)
	if err != nil {
		return err
	}
	s.env = env
	return nil
}

func (s *sideFlag) Type() string {
	return "side"
}

var listSide = sideFlag{env: core.DefaultEnv()}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [pack file]",
	Short: "List all the files in the modpack",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		packFile := viper.GetString("pack-file")
		if len(args) > 0 {
			packFile = args[0]
		}

		pack, err := cmdshared.LoadPack(packFile)
		if err != nil {
			Logger.Error(err)
			os.Exit(1)
		}

		for _, f := range filterFiles(pack.Files, listSide.env) {
			line := fmt.Sprintf("%s (%s)", f.Path, describeVersion(f.Version))
			if f.Environment != core.EnvBoth {
				line += " [" + string(f.Environment) + "]"
			}
			if viper.GetBool("list.sources") && f.Sources != nil {
				line += " from " + strings.Join(f.Sources.Names(), ", ")
			}
			fmt.Println(line)
		}
	},
}

// filterFiles keeps the files installed on side, preserving their order
func filterFiles(files []core.PackFile, side core.PackEnv) []core.PackFile {
	if side == core.EnvBoth {
		return files
	}
	filtered := make([]core.PackFile, 0, len(files))
	for _, f := range files {
		if (side == core.EnvClient && f.Environment.OnClient()) || (side == core.EnvServer && f.Environment.OnServer()) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func describeVersion(v core.PackVersion) string {
	switch v := v.(type) {
	case core.LatestVersion:
		return "latest " + string(v.Channel)
	case core.SemVerVersion:
		return "semver " + v.Version.String()
	case core.ExactVersion:
		return "exact " + v.Version
	case core.DownloadVersion:
		if len(v.Sources) == 1 {
			return "download from 1 url"
		}
		return fmt.Sprintf("download from %d urls", len(v.Sources))
	}
	return v.VersionType()
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().VarP(&listSide, "side", "s", "Filter files by side (client, server or both)")
	listCmd.Flags().Bool("sources", false, "Print the sources each file may come from")
	_ = viper.BindPFlag("list.sources", listCmd.Flags().Lookup("sources"))
}

package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// Logger is shared by all commands; it writes to stderr
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "athena",
})

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "athena",
	Short: "A command line tool for authoring Minecraft modpack definitions",
}

// Execute starts the root command for athena
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		Logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("pack-file", "pack.toml", "The modpack definition file to use")
	_ = viper.BindPFlag("pack-file", rootCmd.PersistentFlags().Lookup("pack-file"))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Accept default answers to prompts (non-interactive mode)")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("yes"))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.athena.toml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if viper.GetBool("verbose") {
		Logger.SetLevel(log.DebugLevel)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			Logger.Fatal("Failed to find home directory", "err", err)
		}

		// Search config in home directory with name ".athena" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".athena")
	}

	viper.SetEnvPrefix("athena")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		Logger.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seasondb",
	Short: "A local database of seasonal anime",
	Long: `SeasonDB loads cached season files, keeps the anime they list in a
local record store and reviews each season against its broadcast dates.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.seasondb.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().String("season-dir", "", "directory holding season files")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the anime database")
	rootCmd.PersistentFlags().Bool("hide-adult", true, "remove adult content from seasons")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn or error")

	// Bind flags to viper
	viper.BindPFlag("season_dir", rootCmd.PersistentFlags().Lookup("season-dir"))
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("hide_adult_content", rootCmd.PersistentFlags().Lookup("hide-adult"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("SEASONDB")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := readConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// readConfig reads the file named by --config. Otherwise it searches the home
// and current directories for config.yaml, then for .seasondb.yaml.
func readConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		return viper.ReadInConfig()
	}

	// Search for config in home directory and current directory
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")

	for _, name := range []string{"config", ".seasondb"} {
		viper.SetConfigName(name)
		err = viper.ReadInConfig()

		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return err
}

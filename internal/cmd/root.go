package cmd

import (
	_ "embed"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tursodatabase/pentris/internal/flags"
	"github.com/tursodatabase/pentris/internal/settings"
)

//go:embed version.txt
var version string

var rootCmd = &cobra.Command{
	Use:     "pentris",
	Version: version,
	Long:    "Pentris: a falling block puzzle rules engine with tetromino and pentomino variants",
}

func init() {
	rootCmd.PersistentFlags().String("config-path", "", "Path to the directory with config file")
	if err := viper.BindPFlag("config-path", rootCmd.PersistentFlags().Lookup("config-path")); err != nil {
		panic(err)
	}
	flags.AddDebugFlag(rootCmd)
	if err := flags.AddResetConfigFlag(rootCmd); err != nil {
		panic(err)
	}
}

func Execute() {
	err := rootCmd.Execute()
	settings.PersistChanges()
	if err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tursodatabase/pentris/internal"
	"github.com/tursodatabase/pentris/internal/prompt"
	"github.com/tursodatabase/pentris/internal/settings"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage your pentris configuration",
}

func settingKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := settings.ReadSettings()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return s.Keys(), cobra.ShellCompDirectiveNoFileComp
}

var configListCmd = &cobra.Command{
	Use:               "list",
	Short:             "List every configuration value",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		data := [][]string{}
		for _, key := range s.Keys() {
			value, err := s.Get(key)
			if err != nil {
				return err
			}
			data = append(data, []string{key, value})
		}
		printTable([]string{"Key", "Value"}, data)
		fmt.Printf("\nStored in %s\n", internal.Emph(s.Path()))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print a configuration value",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: settingKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		value, err := s.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> [value]",
	Short:             "Set a configuration value",
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: settingKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		key := args[0]
		current, err := s.Get(key)
		if err != nil {
			return err
		}

		if len(args) == 2 {
			if err := s.Set(key, args[1]); err != nil {
				return err
			}
		} else {
			_, err := prompt.TextInput(fmt.Sprintf("New value for %s:", internal.Emph(key)), current, current, func(value string) error {
				return s.Set(key, value)
			})
			if err != nil {
				return err
			}
		}

		value, _ := s.Get(key)
		fmt.Printf("%s is now %s\n", key, internal.Emph(value))
		if value != current {
			s.InvalidateLastSimCache()
		}
		return nil
	},
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/kommit/kommit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShowE,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigPathE,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInitE,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShowE,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGetE,
}

var configInitFlags = configInitOptions{}

func configInitAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&configInitFlags.Force, "force", "f", false, "Overwrite an existing configuration file")
}

func init() {
	configInitAddFlags(configInitCmd)

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)

	rootCmd.AddCommand(configCmd)
}

type configInitOptions struct {
	Force bool
}

func runConfigPathE(cmd *cobra.Command, args []string) error {
	if path, ok := config.GetPath(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (not created)\n", config.GetDefaultPath())

	return nil
}

func runConfigInitE(cmd *cobra.Command, args []string) error {
	if path, ok := config.GetPath(); ok && !configInitFlags.Force {
		return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", path)
	}

	path := config.GetDefaultPath()
	if err := config.Save(config.NewDefault(), path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}

func runConfigShowE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}

func runConfigGetE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	val := gjson.Get(string(raw), args[0])
	if !val.Exists() {
		return fmt.Errorf("unknown configuration key: %s", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), val.String())

	return nil
}

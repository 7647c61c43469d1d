package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dusk/internal/cli"
	"github.com/bnema/dusk/internal/cli/styles"
	"github.com/bnema/dusk/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where dusk keeps its files, the effective configuration and its JSON Schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, database and output locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, environment overrides and path
resolution have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.toml",
	Long: `Print a JSON Schema describing config.toml, for editor completion.

Example:
  dusk config schema > ~/.config/dusk/config.schema.json`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config file: %w", err)
	}
	if a.ConfigManager != nil {
		configFile = a.ConfigManager.GetConfigFile()
	}

	paths := styles.ConfigPaths{
		ConfigFile:   configFile,
		Database:     a.Config.Database.Path,
		OverrideFile: a.Config.Ambient.OverrideFile,
	}
	if a.Config.Appearance.Stylesheet {
		paths.Stylesheet = a.Config.Appearance.StylesheetPath
		paths.StateFile = cli.StatePath(a.Config.Appearance.StylesheetPath)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(a.Theme).RenderPaths(paths))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.Marshal(a.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

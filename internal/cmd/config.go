package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/teamdate/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or create the teamdate configuration",
		Long: `View or create the teamdate configuration.

Without arguments, displays the effective configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow(cmd, config.FormatTOML)
		},
	}

	var format string
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after defaults, TEAMDATE_* environment variables
and command line flags are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow(cmd, format)
		},
	}
	configShowCmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, "output format: toml or yaml")

	var force bool
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample config file",
		Long:  `Create a commented sample config file at the --config path.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigInit(cmd, force)
		},
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Args:  cobra.NoArgs,
		RunE:  a.runConfigPath,
	}

	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)
	return configCmd
}

func (a *app) runConfigShow(cmd *cobra.Command, format string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	out, err := cfg.Dump(format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func (a *app) runConfigInit(cmd *cobra.Command, force bool) error {
	if err := config.WriteSample(a.configPath, force); err != nil {
		return err
	}
	a.logger.Info("wrote sample config", "path", a.configPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", a.configPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to describe your teams.")
	return nil
}

func (a *app) runConfigPath(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(a.configPath); err == nil {
		fmt.Fprintf(out, "Active config: %s\n", a.configPath)
	} else {
		fmt.Fprintf(out, "Config path: %s (not created, see 'teamdate config init')\n", a.configPath)
	}
	fmt.Fprintf(out, "\nEnvironment variables: %s_* (e.g., %s_DATE_FORMAT, %s_DIALECT)\n",
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-agent/internal/client"
	"github.com/MKhiriev/go-pass-agent/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the configuration",
		// config must work while the configuration is broken
		PersistentPreRunE: func(*cobra.Command, []string) error {
			c.logger = cliLogger()
			return nil
		},
	}
	cmd.AddCommand(newConfigShowCmd(c), newConfigSetCmd(c), newConfigUnsetCmd(c))
	return cmd
}

func newConfigShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := config.GetCLIConfig()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(config.Effective(cfg), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, string(out))
			return err
		},
	}
}

func newConfigSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration key",
		Long:      "Set a configuration key and stop the agent so the next command starts one with the new settings.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editConfig(cmd, func(fc *config.FileConfig) error {
				return fc.Set(args[0], args[1])
			})
		},
	}
}

func newConfigUnsetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "unset <key>",
		Short:     "Reset a configuration key to its default",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editConfig(cmd, func(fc *config.FileConfig) error {
				return fc.Unset(args[0])
			})
		},
	}
}

func (c *cli) editConfig(cmd *cobra.Command, edit func(*config.FileConfig) error) error {
	path := config.FilePath()
	fc, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if err = edit(fc); err != nil {
		return err
	}
	if err = fc.Save(path); err != nil {
		return err
	}

	cfg, err := config.GetCLIConfig()
	if err != nil {
		c.logger.Warn().Err(err).Msg("config does not load, agent not stopped")
		return nil
	}
	return client.New(cfg, nil, c.logger).StopAgent(cmd.Context())
}

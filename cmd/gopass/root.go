package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-pass-agent/internal/client"
	"github.com/MKhiriev/go-pass-agent/internal/config"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/tui"
	"github.com/spf13/cobra"
)

// cli carries what every command needs. cfg, app and prompter are filled
// in by the root's PersistentPreRunE.
type cli struct {
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer

	cfg      *config.StructuredConfig
	logger   *logger.Logger
	prompter *tui.Prompter
	app      *client.App
}

func newCLI(stdin *os.File, stdout, stderr io.Writer) *cli {
	return &cli{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (c *cli) init() error {
	c.logger = cliLogger()

	cfg, err := config.GetCLIConfig()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.prompter = tui.NewPrompter(c.stdin, c.stderr)
	c.app = client.New(cfg, c.prompter, c.logger)
	return nil
}

// cliLogger logs to stderr. GOPASS_DEBUG turns on debug output.
func cliLogger() *logger.Logger {
	return logger.NewCLILogger(os.Getenv("GOPASS_DEBUG") != "")
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "gopass",
		Short:         "Command line client for a Bitwarden-compatible vault",
		Long:          "gopass keeps the unlocked vault key in a background agent, so the master password is asked once per session.",
		Version:       version(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.init()
		},
	}
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.AddCommand(
		newConfigCmd(c),
		newLoginCmd(c),
		newUnlockCmd(c),
		newSyncCmd(c),
		newListCmd(c),
		newGetCmd(c),
		newAddCmd(c),
		newGenerateCmd(c),
		newEditCmd(c),
		newRemoveCmd(c),
		newLockCmd(c),
		newPurgeCmd(c),
		newStopAgentCmd(c),
		newStatusCmd(c),
	)
	return root
}

// execute runs args and returns the process exit code. Failures are
// printed as "gopass: <command>: <cause>".
func execute(ctx context.Context, c *cli, args []string) int {
	root := newRootCmd(c)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	prefix := root.Name()
	if cmd != nil && cmd != root {
		prefix += ": " + strings.TrimPrefix(cmd.CommandPath(), root.Name()+" ")
	}
	fmt.Fprintf(c.stderr, "%s: %v\n", prefix, err)
	return 1
}

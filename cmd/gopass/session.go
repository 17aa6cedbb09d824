package main

import (
	"fmt"

	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/tui"
	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with the configured email, unlock and sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Login(cmd.Context()); err != nil {
				return err
			}
			stats, err := c.app.Sync(cmd.Context())
			if err != nil {
				return fmt.Errorf("initial sync: %w", err)
			}
			return c.printStats(stats)
		},
	}
}

func newUnlockCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Unlock(cmd.Context())
		},
	}
}

func newSyncCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local cache with the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Sync(cmd.Context())
			if err != nil {
				return err
			}
			return c.printStats(stats)
		},
	}
}

func newLockCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Discard the vault key held by the agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Lock(cmd.Context())
		},
	}
}

func newPurgeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete the local cache; the server copy is kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Purge(cmd.Context())
		},
	}
}

func newStopAgentCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stop-agent",
		Short: "Lock and stop the background agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.StopAgent(cmd.Context())
		},
	}
}

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the agent state and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, tui.RenderStatus(status))
			return err
		},
	}
}

func (c *cli) printStats(s ipc.SyncResult) error {
	if s == (ipc.SyncResult{}) {
		return nil
	}
	_, err := fmt.Fprintf(c.stderr, "synced: %d downloaded, %d uploaded, %d deleted, %d dropped\n",
		s.Downloaded, s.Uploaded, s.Deleted, s.Dropped)
	return err
}

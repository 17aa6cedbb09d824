package main

import (
	"fmt"

	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/tui"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// nameAndUser splits the common `<name> [user]` arguments.
func nameAndUser(args []string) (string, string) {
	if len(args) > 1 {
		return args[0], args[1]
	}
	return args[0], ""
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entry names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.List(cmd.Context())
			if err != nil || len(entries) == 0 {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, tui.RenderList(entries))
			return err
		},
	}
}

func newGetCmd(c *cli) *cobra.Command {
	var full, toClipboard bool

	cmd := &cobra.Command{
		Use:   "get <name> [user]",
		Short: "Print the password of an entry",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, user := nameAndUser(args)
			entry, err := c.app.Get(cmd.Context(), name, user)
			if err != nil {
				return err
			}

			if toClipboard {
				if err = clipboard.WriteAll(entry.Password); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(c.stderr, "password copied to clipboard")
				return nil
			}
			_, err = fmt.Fprintln(c.stdout, tui.RenderEntry(entry, full))
			return err
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Also print the username, folder and notes")
	cmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "Copy the password to the clipboard instead of printing it")
	return cmd
}

func newAddCmd(c *cli) *cobra.Command {
	var folder, notes string

	cmd := &cobra.Command{
		Use:   "add <name> [user]",
		Short: "Add an entry; the password is read from the prompt or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, user := nameAndUser(args)
			password, err := c.prompter.Password(cmd.Context(), fmt.Sprintf("Password for %s:", name))
			if err != nil {
				return err
			}
			_, err = c.app.Add(cmd.Context(), ipc.AddRequest{
				Name:     name,
				User:     user,
				Password: password,
				Notes:    notes,
				Folder:   folder,
			})
			return err
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "Folder to file the entry under")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	return cmd
}

func newEditCmd(c *cli) *cobra.Command {
	var (
		rename, username, folder, notes string
		newPassword                     bool
	)

	cmd := &cobra.Command{
		Use:   "edit <name> [user]",
		Short: "Change an entry; without flags a new password is prompted for",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, user := nameAndUser(args)
			flags := cmd.Flags()

			var patch models.EntryPatch
			if flags.Changed("rename") {
				patch.Name = &rename
			}
			if flags.Changed("username") {
				patch.Username = &username
			}
			if flags.Changed("folder") {
				patch.Folder = &folder
			}
			if flags.Changed("notes") {
				patch.Notes = &notes
			}

			if newPassword || patch == (models.EntryPatch{}) {
				password, err := c.prompter.Password(cmd.Context(), fmt.Sprintf("New password for %s:", name))
				if err != nil {
					return err
				}
				patch.Password = &password
			}

			_, err := c.app.Edit(cmd.Context(), name, user, patch)
			return err
		},
	}
	cmd.Flags().StringVar(&rename, "rename", "", "New entry name")
	cmd.Flags().StringVar(&username, "username", "", "New username")
	cmd.Flags().StringVar(&folder, "folder", "", "New folder")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	cmd.Flags().BoolVar(&newPassword, "password", false, "Prompt for a new password as well")
	return cmd
}

func newRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name> [user]",
		Short: "Remove an entry",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, user := nameAndUser(args)
			return c.app.Remove(cmd.Context(), name, user)
		},
	}
}

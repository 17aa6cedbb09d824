package main

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/spf13/cobra"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		noSymbols, onlyNumbers, nonConfusables, diceware bool
		folder                                           string
	)

	cmd := &cobra.Command{
		Use:   "generate <length> [name] [user]",
		Short: "Generate a password, storing it when a name is given",
		Long: "Generate a password and print it. With a name the password is also stored, " +
			"creating the entry or replacing its password. With --diceware length counts words.",
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[0])
			if err != nil || length <= 0 {
				return fmt.Errorf("invalid length %q", args[0])
			}

			policy := models.PolicyAllChars
			switch {
			case noSymbols:
				policy = models.PolicyNoSymbols
			case onlyNumbers:
				policy = models.PolicyNumbersOnly
			case nonConfusables:
				policy = models.PolicyNonConfusables
			case diceware:
				policy = models.PolicyDiceware
			}

			req := ipc.GenerateRequest{Policy: policy, Length: length, Folder: folder}
			if len(args) > 1 {
				req.Name, req.User = nameAndUser(args[1:])
			}

			result, err := c.app.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, result.Password)
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&noSymbols, "no-symbols", false, "Letters and digits only")
	flags.BoolVar(&onlyNumbers, "only-numbers", false, "Digits only")
	flags.BoolVar(&nonConfusables, "nonconfusables", false, "Avoid characters that look alike")
	flags.BoolVar(&diceware, "diceware", false, "Generate a passphrase of random words")
	flags.StringVar(&folder, "folder", "", "Folder for a newly stored entry")
	cmd.MarkFlagsMutuallyExclusive("no-symbols", "only-numbers", "nonconfusables", "diceware")
	return cmd
}

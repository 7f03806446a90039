// Command hashpw prints bcrypt hashes suitable for seeding the users table.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/internhub/internship-service/internal/auth"
)

var defaultPasswords = []string{"password1", "password2", "password3", "password4", "password5"}

func newRootCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hashpw [password...]",
		Short: "Print bcrypt hashes for seed passwords",
		Long: `hashpw hashes each argument with bcrypt and prints one line per password.
With no arguments it hashes password1 through password5.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultPasswords
			}
			return writeHashes(cmd.OutOrStdout(), args, cost)
		},
	}
	cmd.Flags().IntVar(&cost, "cost", auth.DefaultCost, "bcrypt cost factor")
	return cmd
}

func writeHashes(w io.Writer, passwords []string, cost int) error {
	for i, pw := range passwords {
		hash, err := auth.HashPassword(pw, cost)
		if err != nil {
			return fmt.Errorf("hash password %d: %w", i+1, err)
		}
		if _, err := fmt.Fprintf(w, "Password %d: %s\n", i+1, hash); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

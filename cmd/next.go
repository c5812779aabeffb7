package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/toeic-drill.net/internal/domain"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <problemId>",
		Short: "Print the id that follows problemId",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, ok := domain.NextProblemID(args[0])
			if !ok {
				return fmt.Errorf("no next problem for %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
}

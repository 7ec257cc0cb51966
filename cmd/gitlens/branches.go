package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newBranchesCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branches",
		Short: "list branches",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return branchesCmd(cmd.OutOrStdout(), cfg)
	}
	return cmd
}

func branchesCmd(out io.Writer, cfg *config) error {
	r, err := cfg.openRepo()
	if err != nil {
		return err
	}
	branches, err := r.ListBranches()
	if err != nil {
		return err
	}
	for _, b := range branches {
		marker := "  "
		if b.IsCurrent {
			marker = "* "
		}
		fmt.Fprintf(out, "%s%s\t%s\n", marker, b.Name, b.Target)
	}
	return nil
}

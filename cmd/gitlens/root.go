package main

import (
	"os"

	"github.com/nivl-successor/gitlens/repo"
	"github.com/spf13/cobra"
)

// config holds the flags shared by every subcommand, mirroring the
// teacher's persistent "-C" flag (cmd/git-go/main.go).
type config struct {
	C string
}

func (c *config) openRepo() (*repo.Repository, error) {
	root := c.C
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = wd
	}
	return repo.Open(root)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitlens",
		Short:         "read-only inspector for a local repository's commit graph",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cfg := &config{}
	cmd.PersistentFlags().StringVarP(&cfg.C, "C", "C", "", "path to the repository to inspect (defaults to the current directory)")

	cmd.AddCommand(newLogCmd(cfg))
	cmd.AddCommand(newBranchesCmd(cfg))
	cmd.AddCommand(newTagsCmd(cfg))
	cmd.AddCommand(newShowCmd(cfg))
	cmd.AddCommand(newDiffCmd(cfg))

	return cmd
}

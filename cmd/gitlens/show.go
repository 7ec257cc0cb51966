package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newShowCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <revision>",
		Short: "show a commit's metadata and the files it changed",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return showCmd(cmd.OutOrStdout(), cfg, args[0])
	}
	return cmd
}

func showCmd(out io.Writer, cfg *config, rev string) error {
	r, err := cfg.openRepo()
	if err != nil {
		return err
	}

	id, err := r.ResolveRevision(rev)
	if err != nil {
		return err
	}

	commit, changes, stats, err := r.CommitDetails(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "commit %s\n", commit.ID)
	fmt.Fprintf(out, "tree %s\n", commit.TreeID)
	for _, p := range commit.ParentIDs {
		fmt.Fprintf(out, "parent %s\n", p)
	}
	fmt.Fprintf(out, "Author: %s <%s>\n", commit.Author.Name, commit.Author.Email)
	fmt.Fprintf(out, "Committer: %s <%s>\n\n", commit.Committer.Name, commit.Committer.Email)
	fmt.Fprintf(out, "    %s\n\n", commit.FullMessage)

	for _, c := range changes {
		fmt.Fprintf(out, "%s\t%s\t+%d -%d\n", c.Kind, c.Path, c.Additions, c.Deletions)
	}
	fmt.Fprintf(out, "\n%d file(s) changed, %d insertion(s), %d deletion(s)\n",
		stats.FilesChanged, stats.Additions, stats.Deletions)
	return nil
}

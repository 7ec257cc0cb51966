package main

import (
	"fmt"
	"io"
	"time"

	"github.com/nivl-successor/gitlens/oid"
	"github.com/spf13/cobra"
)

func newLogCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [revision]",
		Short: "walk the commit graph from a revision (defaults to HEAD)",
		Args:  cobra.MaximumNArgs(1),
	}

	limit := cmd.Flags().IntP("limit", "n", 20, "maximum number of commits to return")
	author := cmd.Flags().String("author", "", "filter: case-insensitive substring match against author name or email")
	search := cmd.Flags().String("grep", "", "filter: case-insensitive substring match against the full commit message")
	path := cmd.Flags().String("path", "", "filter: commit must touch this exact path relative to the tree root")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		rev := "HEAD"
		if len(args) == 1 {
			rev = args[0]
		}
		return logCmd(cmd.OutOrStdout(), cfg, rev, *limit, *author, *search, *path)
	}
	return cmd
}

func logCmd(out io.Writer, cfg *config, rev string, limit int, author, search, path string) error {
	r, err := cfg.openRepo()
	if err != nil {
		return err
	}

	root, err := r.ResolveRevision(rev)
	if err != nil {
		return err
	}

	filter := repoFilter(author, search, path)
	for _, c := range r.ListCommits([]oid.Oid{root}, limit, filter) {
		t := time.Unix(c.Author.Timestamp, 0).UTC().Format(time.RFC3339)
		fmt.Fprintf(out, "commit %s\n", c.ID)
		fmt.Fprintf(out, "Author: %s <%s>\n", c.Author.Name, c.Author.Email)
		fmt.Fprintf(out, "Date:   %s\n\n", t)
		fmt.Fprintf(out, "    %s\n\n", c.Message)
	}
	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/nivl-successor/gitlens/oid"
	"github.com/spf13/cobra"
)

func newDiffCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <revision> [revision]",
		Short: "list the files a commit changed against its first parent, or between two revisions' trees, with line counts (no diff text)",
		Args:  cobra.RangeArgs(1, 2),
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return diffCmd(cmd.OutOrStdout(), cfg, args)
	}
	return cmd
}

func diffCmd(out io.Writer, cfg *config, args []string) error {
	r, err := cfg.openRepo()
	if err != nil {
		return err
	}

	var oldTree, newTree oid.Oid
	if len(args) == 2 {
		oldID, err := r.ResolveRevision(args[0])
		if err != nil {
			return err
		}
		newID, err := r.ResolveRevision(args[1])
		if err != nil {
			return err
		}
		oldCommit, err := r.GetCommit(oldID)
		if err != nil {
			return err
		}
		newCommit, err := r.GetCommit(newID)
		if err != nil {
			return err
		}
		oldTree, newTree = oldCommit.TreeID, newCommit.TreeID
	} else {
		id, err := r.ResolveRevision(args[0])
		if err != nil {
			return err
		}
		commit, err := r.GetCommit(id)
		if err != nil {
			return err
		}
		if len(commit.ParentIDs) > 0 {
			parent, err := r.GetCommit(commit.ParentIDs[0])
			if err != nil {
				return err
			}
			oldTree = parent.TreeID
		}
		newTree = commit.TreeID
	}

	changes, err := r.CompareTrees(oldTree, newTree)
	if err != nil {
		return err
	}
	for _, c := range changes {
		fmt.Fprintf(out, "%s %s (+%d -%d)\n", c.Kind, c.Path, c.Additions, c.Deletions)
	}
	return nil
}

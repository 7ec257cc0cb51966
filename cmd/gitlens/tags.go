package main

import (
	"fmt"
	"io"

	"github.com/nivl-successor/gitlens/refs"
	"github.com/spf13/cobra"
)

func newTagsCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "list tags",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return tagsCmd(cmd.OutOrStdout(), cfg)
	}
	return cmd
}

func tagsCmd(out io.Writer, cfg *config) error {
	r, err := cfg.openRepo()
	if err != nil {
		return err
	}
	tags, err := r.ListTags()
	if err != nil {
		return err
	}
	for _, t := range tags {
		kind := "lightweight"
		if t.Kind == refs.Annotated {
			kind = "annotated"
		}
		fmt.Fprintf(out, "%s\t%s\t(%s -> %s)\n", t.Name, kind, t.TagID, t.CommitID)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tgienger/todocmd/internal/todotxt"
	"github.com/tgienger/todocmd/internal/ui/styles"
	"github.com/tgienger/todocmd/internal/workspace"
)

func newListCmd(env *environment) *cobra.Command {
	var projects, contexts []string
	var dueBefore string
	var showDone bool

	cmd := &cobra.Command{
		Use:     "list [words...]",
		Aliases: []string{"ls"},
		Short:   "List tasks matching all given words and tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := workspace.Query{Projects: projects, Contexts: contexts, Words: args}
			if dueBefore != "" {
				d, err := todotxt.ParseDate(dueBefore)
				if err != nil {
					return fmt.Errorf("invalid --due-before: %w", err)
				}
				q.DueBefore = &d
			}

			ws, err := env.load()
			if err != nil {
				return err
			}
			list := ws.Todo
			if showDone {
				list = ws.Done
			}

			s := styles.NewStyles()
			out := cmd.OutOrStdout()
			matches := workspace.Filter(list, q)
			for _, m := range matches {
				fmt.Fprintf(out, "%s%s\n", s.EntryIndex.Render(fmt.Sprint(m.Index)), s.RenderEntry(m.Entry))
			}
			env.logger.Debug("listed tasks", "shown", len(matches), "total", list.Len())
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&projects, "project", "p", nil, "only tasks tagged +PROJECT")
	cmd.Flags().StringSliceVarP(&contexts, "context", "c", nil, "only tasks tagged @CONTEXT")
	cmd.Flags().StringVar(&dueBefore, "due-before", "", "only tasks due before YYYY-MM-DD")
	cmd.Flags().BoolVar(&showDone, "done", false, "list the done file instead")

	return cmd
}

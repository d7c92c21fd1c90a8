package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tgienger/todocmd/internal/todotxt"
	"github.com/tgienger/todocmd/internal/workspace"
)

func newAddCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "add [task...]",
		Short: "Append a task to the todo file",
		Long:  "Append a task to the todo file. Without arguments, every non-empty line of standard input is added.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := env.load()
			if err != nil {
				return err
			}

			var next workspace.Workspace
			if len(args) > 0 {
				next = ws.Add(strings.Join(args, " "))
			} else {
				c, err := todotxt.ReadCollection(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read tasks: %w", err)
				}
				next = ws.Append(c.Entries...)
			}
			if next.Todo.Len() == ws.Todo.Len() {
				return fmt.Errorf("nothing to add")
			}

			if err := env.save(next); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := ws.Todo.Len(); i < next.Todo.Len(); i++ {
				fmt.Fprintf(out, "%d %s\n", i+1, next.Todo.Entries[i])
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tgienger/todocmd/internal/workspace"
)

func newDoneCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:     "done <n>",
		Aliases: []string{"do"},
		Short:   "Move task n to the done file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, env, args[0], "completed", workspace.Workspace.Complete)
		},
	}
}

func newRemoveCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"del"},
		Short:   "Delete task n",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, env, args[0], "removed", workspace.Workspace.Remove)
		},
	}
}

func mutate(cmd *cobra.Command, env *environment, arg, verb string, op func(workspace.Workspace, int) (workspace.Workspace, error)) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("task number must be an integer: %q", arg)
	}
	ws, err := env.load()
	if err != nil {
		return err
	}
	next, err := op(*ws, n)
	if err != nil {
		return err
	}
	if err := env.save(next); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d: %s\n", verb, n, ws.Todo.Entries[n-1])
	return nil
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tgienger/todocmd/internal/db"
	"github.com/tgienger/todocmd/internal/models"
	"github.com/tgienger/todocmd/internal/ui/styles"
)

func newProjectsCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "projects [name]",
		Short: "Show open and done counts per project, or the tasks of one project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarize(cmd, env, args, models.KindProject, (*db.DB).ListProjects)
		},
	}
}

func newContextsCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts [name]",
		Short: "Show open and done counts per context, or the tasks of one context",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarize(cmd, env, args, models.KindContext, (*db.DB).ListContexts)
		},
	}
}

func summarize(cmd *cobra.Command, env *environment, args []string, kind models.Kind, query func(*db.DB) ([]models.Summary, error)) error {
	ws, err := env.load()
	if err != nil {
		return err
	}
	database, err := env.openIndex(ws)
	if err != nil {
		return err
	}
	defer database.Close()

	sigil := "+"
	if kind == models.KindContext {
		sigil = "@"
	}
	s := styles.NewStyles()

	if len(args) == 1 {
		entries, err := database.EntriesTagged(kind, args[0])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no tasks tagged %s%s", sigil, args[0])
		}
		t := s.NewTable("LIST", "#", "TASK")
		for _, e := range entries {
			t.Row(e.List, strconv.Itoa(e.Position), e.Raw)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	}

	summaries, err := query(database)
	if err != nil {
		return err
	}
	t := s.NewTable("NAME", "OPEN", "DONE")
	for _, sum := range summaries {
		t.Row(sigil+sum.Name, strconv.Itoa(sum.Open), strconv.Itoa(sum.Done))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

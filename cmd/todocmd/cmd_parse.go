package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tgienger/todocmd/internal/models"
	"github.com/tgienger/todocmd/internal/todotxt"
	"github.com/tgienger/todocmd/internal/ui/styles"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line...>",
		Short: "Show how a task line is classified, token by token",
		Args:  cobra.MinimumNArgs(1),
		// parse needs no config or files
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := todotxt.ParseEntry(strings.Join(args, " "))
			s := styles.NewStyles()
			t := s.NewTable().StyleFunc(func(row, col int) lipgloss.Style {
				if col == 0 && row >= 0 && row < len(entry.Elements) {
					return s.Elements[entry.Elements[row].Kind()].PaddingRight(2)
				}
				return s.TableCell
			})
			for _, el := range entry.Elements {
				t.Row(el.Kind().String(), describe(el))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func describe(el models.Element) string {
	switch el := el.(type) {
	case models.Recurrence:
		return fmt.Sprintf("plus=%t count=%d unit=%s", el.Plus, el.Count, el.Unit)
	case models.Text:
		return fmt.Sprintf("%q", el.Content)
	default:
		return models.Value(el)
	}
}

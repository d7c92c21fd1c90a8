package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tgienger/todocmd/internal/ui"
)

func newUICmd(env *environment) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse and complete tasks interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := env.load()
			if err != nil {
				return err
			}
			database, err := env.openIndex(ws)
			if err != nil {
				return err
			}
			defer database.Close()

			// The alternate screen owns the terminal while the program runs
			env.logger.SetOutput(io.Discard)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				env.logger.SetOutput(f)
			}

			app := ui.NewApp(database, ws, env.store, env.logger)
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running application: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the UI runs")
	return cmd
}

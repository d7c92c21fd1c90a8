package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	env := &environment{}

	rootCmd := &cobra.Command{
		Use:           "todocmd",
		Short:         "Manage todo.txt task lists",
		Version:       version + " (commit: " + commit + ", built: " + date + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&env.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/todocmd/todocmd.toml)")
	flags.StringVar(&env.overrides.TodoFile, "todo-file", "", "todo.txt file")
	flags.StringVar(&env.overrides.DoneFile, "done-file", "", "done.txt file")
	flags.StringVar(&env.overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newListCmd(env))
	rootCmd.AddCommand(newAddCmd(env))
	rootCmd.AddCommand(newDoneCmd(env))
	rootCmd.AddCommand(newRemoveCmd(env))
	rootCmd.AddCommand(newProjectsCmd(env))
	rootCmd.AddCommand(newContextsCmd(env))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newUICmd(env))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		newLogger(os.Stderr, log.ErrorLevel).Error(err)
		os.Exit(1)
	}
}

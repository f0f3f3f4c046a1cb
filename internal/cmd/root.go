// Package cmd defines the vsm command tree. Each subcommand resolves its
// inputs, builds one App, and dispatches a single action.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vimtools/vsm/internal/app"
	"github.com/vimtools/vsm/internal/config"
	"github.com/vimtools/vsm/internal/errors"
	"github.com/vimtools/vsm/internal/logging"
	"github.com/vimtools/vsm/internal/tui/selector"
)

var rootCmd = &cobra.Command{
	Use:   "vsm",
	Short: "Interactive vim session manager",
	Long: `vsm lists, opens, and removes vim session files from a single
session directory, and remembers which vim variant should reopen them.

Session files come from your editor (:mksession); vsm never writes them.
The session directory is $VIM_SESSIONS, or ~/.config/vim_sessions when
unset.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	cfgFile   string
	debugMode bool
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/vsm/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "show debugging messages")
}

func initConfig() {
	config.Init(cfgFile)
}

// newApp loads the configuration and wires the terminal-backed prompts into
// a ready dispatcher for one command.
func newApp(command string) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if debugMode {
		level = logging.LevelDebug
	}
	log := logging.NewStderr(level).WithCommand(command)

	return app.New(cfg, log, selector.NewTerminal(), confirmPrompt), nil
}

// confirmPrompt asks a yes/no question on the terminal. The answer defaults
// to no; aborting the prompt counts as a cancellation, not a fault.
func confirmPrompt(title string) (bool, error) {
	var ok bool
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	if err := confirm.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, errors.ErrSelectionCancelled
		}
		return false, err
	}
	return ok, nil
}

// done maps a command outcome to its exit behavior: cancellation is a
// normal result reported neutrally, everything else propagates.
func done(err error) error {
	if errors.IsCancellation(err) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}

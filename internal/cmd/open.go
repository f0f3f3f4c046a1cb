package cmd

import (
	"github.com/spf13/cobra"
)

var openVariant string

var openCmd = &cobra.Command{
	Use:   "open [session]",
	Short: "Load a session file",
	Long: `Open a session in the configured vim variant. With a session name,
opens it directly; without one, prompts for a choice. The editor runs in
the foreground with the terminal attached, and its exit status becomes
vsm's own.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().StringVarP(&openVariant, "variant", "v", "", "vim variant to use for this run (vim, nvim, neovide, gvim)")
}

func runOpen(cmd *cobra.Command, args []string) error {
	a, err := newApp("open")
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	return done(a.Open(name, openVariant))
}

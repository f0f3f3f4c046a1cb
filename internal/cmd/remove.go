package cmd

import (
	"github.com/spf13/cobra"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:   "remove [session]",
	Short: "Remove a session file",
	Long: `Delete a session file from the session directory. With a session
name, targets it directly; without one, prompts for a choice. Asks for
confirmation before deleting unless --force is given; the confirmation
defaults to no.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "delete without asking for confirmation")
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp("remove")
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	return done(a.Remove(name, removeForce))
}

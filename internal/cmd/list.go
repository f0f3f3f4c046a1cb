package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available vim session files",
	Long: `List every session file in the session directory, sorted by name,
with its last modification time. An empty directory is not an error; a
missing one is, since only your editor creates it.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp("list")
	if err != nil {
		return err
	}
	return a.List()
}

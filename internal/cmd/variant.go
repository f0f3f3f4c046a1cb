package cmd

import (
	"github.com/spf13/cobra"
)

var variantCmd = &cobra.Command{
	Use:   "variant",
	Short: "Change the vim variant used to open sessions",
	Long: `Pick the default vim variant from the supported flavors found on
your PATH and persist the choice. The saved default applies to every later
run; a one-off override is available via 'vsm open --variant'.`,
	Args: cobra.NoArgs,
	RunE: runVariant,
}

func init() {
	rootCmd.AddCommand(variantCmd)
}

func runVariant(cmd *cobra.Command, args []string) error {
	a, err := newApp("variant")
	if err != nil {
		return err
	}
	return done(a.ChooseDefaultVariant())
}

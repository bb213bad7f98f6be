package cmd

import (
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hilo",
	Short: "Play Hi-Lo patience in the terminal",
	Long: `Hilo is a single-deck Hi-Lo patience game. Cards are dealt into rows and
for both ends of every row hilo shows the chance that the next card from the
deck is higher, equal or lower in rank.

Cards are written <suit><rank>: suits a (clubs), b (spades), c (hearts),
d (diamonds); ranks 2-14 with 11=J, 12=Q, 13=K, 14=A.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			colorize.NoColor = true
		}
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

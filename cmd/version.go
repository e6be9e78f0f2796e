package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chippy8vm/chippy/internal/config"
)

var versionQuirks bool

// versionCmd returns the callers installed chippy version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed chippy version",
	Long:  "Run `chippy version` to get your current chippy version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionQuirks, "quirks", false, "also print the default quirk flags")
}

func runVersion(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		fmt.Println("The version command does not take any arguments")
		os.Exit(1)
	}
	fmt.Println(currentReleaseVersion)

	if versionQuirks {
		q := config.Default().Quirks
		fmt.Printf("quirks (defaults): shift-uses-vy=%t jump-adds-vx=%t addi-sets-vf=%t\n",
			q.ShiftUsesVY, q.JumpAddsVX, q.AddiSetsVF)
	}
}

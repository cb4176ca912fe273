package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/andresmejia3/matte/internal/utils"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded batch runs from the history database",
	Run: func(cmd *cobra.Command, args []string) {
		runRuns(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command) {
	db := requireDB()

	runs, err := db.ListRuns(cmd.Context())
	if err != nil {
		utils.Die("Failed to list runs", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tINPUT\tSTARTED\tOK\tFAILED\tWALL")
	fmt.Fprintln(w, "--\t-----\t-------\t--\t------\t----")

	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%.2fs\n",
			r.ID, r.InputDir, r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Succeeded, r.Failed, r.WallSeconds)
	}
	w.Flush()
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/andresmejia3/matte/internal/utils"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all recorded run history from the database",
	Run: func(cmd *cobra.Command, args []string) {
		db := requireDB()

		reader := bufio.NewReader(os.Stdin)
		if !confirm(reader, "⚠️  Are you sure you want to DROP all run-history tables?") {
			fmt.Println("Aborted.")
			return
		}

		fmt.Println("🗑️  Clearing run history...")
		if err := db.Reset(cmd.Context()); err != nil {
			utils.Die("Failed to reset history database", err)
		}
		fmt.Println("✨ History cleared.")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func confirm(r *bufio.Reader, prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	res, _ := r.ReadString('\n')
	res = strings.TrimSpace(strings.ToLower(res))
	return res == "y" || res == "yes"
}

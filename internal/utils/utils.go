package utils

import (
	"fmt"
	"os"
	"time"
)

// Die is the unified exit strategy for matte.
// It prints a formatted error box to stderr and terminates the process.
func Die(context string, err error) {
	fmt.Fprintf(os.Stderr, "\n---------------------------------------------------------\n")
	fmt.Fprintf(os.Stderr, "🚨 MATTE ERROR: %s\n", context)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DETAILS: %v\n", err)
	}
	fmt.Fprintf(os.Stderr, "---------------------------------------------------------\n")
	os.Exit(1)
}

// FormatSeconds renders a duration as fractional seconds for report lines.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2f seconds", d.Seconds())
}

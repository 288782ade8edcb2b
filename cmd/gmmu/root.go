// The gmmu command exercises the GPU MMU abstraction layer against a
// software backend, with optional event recording and live monitoring.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "gmmu",
	Short: "gmmu drives the GPU MMU layer through bring-up, mapping, " +
		"and address-space switching.",
	Long: `gmmu drives the GPU MMU layer through a full lifecycle against ` +
		`a chosen backend: unit discovery, start, buffer mapping, ` +
		`address-space switching, and teardown. Event recording and a ` +
		`monitoring server can observe the run.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can predefine GMMU_* settings; absence is fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

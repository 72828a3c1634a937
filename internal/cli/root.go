package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qpath",
	Short: "Inspect and create filesystem paths",
	Long: `qpath inspects a path, lists every entry beneath a directory in
pre-order, and creates missing directories with mkdir -p semantics.

Settings are read from qpath.yaml (in the current directory or --config),
then QPATH_MODE / QPATH_OUTPUT (a .env file is honored), then flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Path not found
  21 - Permission denied
  22 - Path already exists and is not a directory
  23 - Other I/O failure`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text or json (default from qpath.yaml, else text)")
	rootCmd.PersistentFlags().String("config", ".", "Directory containing qpath.yaml")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

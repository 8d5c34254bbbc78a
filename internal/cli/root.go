package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. An invalid project path aborts before any chat interaction
// and gets its own code so wrappers can tell it from runtime failures.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitInvalidPath  = 3
	ExitAuthError    = 4
	ExitRuntimeError = 5
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Conversational AI project review CLI",
	Long:  "Scout reviews a whole project through one multi-turn LLM conversation: description intake, structure analysis, per-file review, and a project-wide summary.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print scout version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "scout version %s\n", version)
	},
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/scout/internal/catalog"
	"github.com/dshills/scout/internal/config"
	"github.com/dshills/scout/internal/conversation"
	"github.com/dshills/scout/internal/output"
	"github.com/dshills/scout/internal/progress"
	"github.com/dshills/scout/internal/providers"
	"github.com/dshills/scout/internal/review"
)

var (
	flagDescription string
	flagLimit       int
	flagProvider    string
	flagModel       string
	flagFormat      string
	flagOut         string
	flagPlain       bool
	flagNoRedact    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dir>",
	Short: "Review a project directory",
	Long:  "Analyze a project: send its description and structure, review each qualifying source file, and request a project-wide summary, all within one conversation.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		runAnalyze(args[0], cfg)
		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagLimit > 0 {
		m["limit"] = fmt.Sprintf("%d", flagLimit)
	}
	return m
}

func runAnalyze(root string, cfg config.Config) {
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}

	// Pre-flight: the only fatal failure, checked before any session exists
	cat, err := catalog.Build(root, catalog.Options{
		Extensions:   cfg.Extensions,
		ExcludedDirs: cfg.ExcludedDirs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, catalog.ErrInvalidProjectPath) {
			exitCode = ExitInvalidPath
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	pctx := review.LoadProjectContext(cat.Root, flagDescription)

	files := catalog.Budget(cat.Files, cfg.Limit, cfg.Markers)
	if len(files) < len(cat.Files) {
		fmt.Fprintf(os.Stderr, "Limiting review to %d of %d files\n", len(files), len(cat.Files))
	}

	chatter, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitAuthError
		return
	}

	var reporter progress.Reporter = progress.NewStyledReporter(os.Stderr)
	if flagPlain {
		reporter = progress.NewLineReporter(os.Stderr)
	}

	session := conversation.NewSession(chatter)
	orch := review.NewOrchestrator(session, reporter, review.Options{
		Provider:      cfg.Provider,
		Model:         cfg.Model,
		MaxFileChars:  cfg.MaxFileChars,
		RedactSecrets: cfg.Privacy.RedactSecrets,
		RedactPaths:   cfg.Privacy.RedactPaths,
	})

	report := orch.Run(context.Background(), pctx, cat, files)

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagDescription, "description", "d", "This is an app", "Short description of the project (overridden by description.txt)")
	analyzeCmd.Flags().IntVarP(&flagLimit, "limit", "l", 0, "Limit the number of files to review (0 = no limit)")
	analyzeCmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (ollama, openai, anthropic, gemini)")
	analyzeCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	analyzeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	analyzeCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&flagPlain, "plain", false, "Plain line-oriented progress output")
	analyzeCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

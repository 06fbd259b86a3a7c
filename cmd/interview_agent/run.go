package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jparkk0517/NLP-team-project/internal/config"
	"github.com/jparkk0517/NLP-team-project/internal/engine"
	"github.com/jparkk0517/NLP-team-project/internal/observability"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run a single interview turn from the terminal",
	Long: `Submits one utterance through the dialogue graph and prints the reply.

Without --content the agent opens the interview with its first question.
Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runTurnCmd,
}

var (
	runConfigPath  string
	runContent     string
	runType        string
	runParentID    string
	runResumeDir   string
	runJDDir       string
	runCompanyDir  string
	runRerank      bool
	runEvaluate    bool
	runVerbose     bool
	runAPIKey      string
	runDatabaseURL string
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runContent, "content", "m", "", "Utterance to submit (omit to generate the opening question)")
	runCommand.Flags().StringVar(&runType, "type", "", "Declared intent: question, answer, followup, model_answer, evaluate")
	runCommand.Flags().StringVar(&runParentID, "parent", "", "Turn id the utterance responds to")
	runCommand.Flags().StringVar(&runResumeDir, "resume-dir", "", "Directory holding the resume text file")
	runCommand.Flags().StringVar(&runJDDir, "jd-dir", "", "Directory holding the job description")
	runCommand.Flags().StringVar(&runCompanyDir, "company-dir", "", "Directory of company reference documents")
	runCommand.Flags().BoolVar(&runRerank, "rerank", false, "Rerank model answers during turn submission")
	runCommand.Flags().BoolVar(&runEvaluate, "evaluate-intent", false, "Enable the explicit evaluate intent")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print the full transcript and persona panel")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runTurnCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Command-line args take priority over config file values.
	if cmd.Flags().Changed("resume-dir") {
		cfg.ResumeDir = runResumeDir
	}
	if cmd.Flags().Changed("jd-dir") {
		cfg.JDDir = runJDDir
	}
	if cmd.Flags().Changed("company-dir") {
		cfg.CompanyDir = runCompanyDir
	}
	if cmd.Flags().Changed("rerank") {
		cfg.RerankEnabled = runRerank
	}
	if cmd.Flags().Changed("evaluate-intent") {
		cfg.EvaluateIntent = runEvaluate
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	cfg.ApplyDefaults()
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng, cleanup, err := buildEngine(ctx, &cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintPersonas(eng.Personas())
	}

	if runContent == "" {
		turns, err := eng.InitialQuestion(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate opening question: %w", err)
		}
		printer.PrintTranscript(turns)
		return nil
	}

	result, err := eng.SubmitTurn(ctx, engine.SubmitTurnRequest{
		Utterance:        runContent,
		DeclaredCategory: runType,
		ParentID:         runParentID,
	})
	if err != nil {
		return fmt.Errorf("turn failed: %w", err)
	}

	if cfg.Verbose {
		printer.PrintTranscript(result.Log)
	}
	fmt.Println(result.Reply)
	return nil
}

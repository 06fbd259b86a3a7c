package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jparkk0517/NLP-team-project/internal/config"
	"github.com/jparkk0517/NLP-team-project/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the interview loop: submit turns, manage the interviewer panel, rerank model answers, and fetch the overall assessment.`,
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveResumeDir  string
	serveJDDir      string
	serveCompanyDir string
	serveRerank     bool
	serveEvaluate   bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveResumeDir, "resume-dir", "", "Directory holding the resume text file")
	serveCmd.Flags().StringVar(&serveJDDir, "jd-dir", "", "Directory holding the job description")
	serveCmd.Flags().StringVar(&serveCompanyDir, "company-dir", "", "Directory of company reference documents")
	serveCmd.Flags().BoolVar(&serveRerank, "rerank", false, "Rerank model answers during turn submission")
	serveCmd.Flags().BoolVar(&serveEvaluate, "evaluate-intent", false, "Enable the explicit evaluate intent")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd, serveConfigPath)
	if err != nil {
		return err
	}

	eng, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(eng, server.Config{Port: cfg.Port})
	return srv.Start()
}

// resolveConfig loads the optional config file, applies flag overrides,
// fills defaults from the environment, and validates the result.
func resolveConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Command-line args take priority over config file values.
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("resume-dir") {
		cfg.ResumeDir = serveResumeDir
	}
	if cmd.Flags().Changed("jd-dir") {
		cfg.JDDir = serveJDDir
	}
	if cmd.Flags().Changed("company-dir") {
		cfg.CompanyDir = serveCompanyDir
	}
	if cmd.Flags().Changed("rerank") {
		cfg.RerankEnabled = serveRerank
	}
	if cmd.Flags().Changed("evaluate-intent") {
		cfg.EvaluateIntent = serveEvaluate
	}

	cfg.ApplyDefaults()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

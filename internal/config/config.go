// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// PersonaSeed describes one interviewer persona registered at startup.
type PersonaSeed struct {
	RoleType           string   `json:"type"`
	Name               string   `json:"name"`
	Interests          []string `json:"interests,omitempty"`
	CommunicationStyle string   `json:"communication_style,omitempty"`
}

// DefaultPersonaSeeds is the panel used when the config names none.
func DefaultPersonaSeeds() []PersonaSeed {
	return []PersonaSeed{
		{RoleType: string(types.RoleOther), Name: "Recruiter", Interests: []string{"adaptability", "culture fit"}},
		{RoleType: string(types.RoleDeveloper), Name: "CTO", Interests: []string{"technical depth", "system design"}},
	}
}

// Config represents the service configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must
// be provided via CLI flags or environment variables.
type Config struct {
	// Document paths
	ResumeDir  string `json:"resume_dir,omitempty"`  // Directory holding the resume text file
	JDDir      string `json:"jd_dir,omitempty"`      // Directory holding the job description
	CompanyDir string `json:"company_dir,omitempty"` // Directory of company reference material

	// Behavior
	APIKey         string `json:"api_key,omitempty"`          // Gemini API key
	SearchCX       string `json:"search_cx,omitempty"`        // Custom search engine id for the web fallback
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL (optional persistence)
	Port           int    `json:"port,omitempty"`             // HTTP listen port
	RerankEnabled  bool   `json:"rerank_enabled,omitempty"`   // Rerank model answers during turn submission
	EvaluateIntent bool   `json:"evaluate_intent,omitempty"`  // Enable the explicit evaluate label
	Verbose        bool   `json:"verbose,omitempty"`          // Print detailed debug information

	// Interviewer panel
	Personas []PersonaSeed `json:"personas,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in what the file left unset.
func (c *Config) ApplyDefaults() {
	if c.ResumeDir == "" {
		c.ResumeDir = "data/resume"
	}
	if c.JDDir == "" {
		c.JDDir = "data/jd"
	}
	if c.CompanyDir == "" {
		c.CompanyDir = "data/company"
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.SearchCX == "" {
		c.SearchCX = os.Getenv("SEARCH_ENGINE_CX")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if len(c.Personas) == 0 {
		c.Personas = DefaultPersonaSeeds()
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	for _, seed := range c.Personas {
		switch types.RoleType(seed.RoleType) {
		case types.RoleDeveloper, types.RoleDesigner, types.RoleProductManager, types.RoleOther:
		default:
			return fmt.Errorf("config error: unknown persona role type %q", seed.RoleType)
		}
		if seed.Name == "" {
			return fmt.Errorf("config error: persona seed missing a name")
		}
	}

	if c.ResumeDir != "" {
		if _, err := os.Stat(c.ResumeDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume directory not found: %s", c.ResumeDir)
		}
	}
	if c.JDDir != "" {
		if _, err := os.Stat(c.JDDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: jd directory not found: %s", c.JDDir)
		}
	}

	return nil
}

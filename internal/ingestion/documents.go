// Package ingestion loads candidate and company source documents from
// disk and prepares them for prompting and indexing.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// CleanText cleans and normalizes document text while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Keep markdown headings as-is, normalize leading spaces to 0
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Preserve bullet lists (Markdown - or *)
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	leadingSpace := len(line) - len(trimmed)
	content := regexp.MustCompile(`\s+`).ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// LoadDocument reads and cleans a single text document.
func LoadDocument(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document not found: %w", err)
		}
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return CleanText(string(content)), nil
}

// LoadFirstDocument loads the first text file from a directory, in
// lexical order. Used for the resume and job-description directories,
// which by convention hold a single file each.
func LoadFirstDocument(dir string) (string, error) {
	names, err := listTextFiles(dir)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no text documents in %s", dir)
	}
	return LoadDocument(filepath.Join(dir, names[0]))
}

// LoadAllDocuments loads and cleans every text file in a directory, in
// lexical order. Used for the company-materials directory.
func LoadAllDocuments(dir string) ([]string, error) {
	names, err := listTextFiles(dir)
	if err != nil {
		return nil, err
	}

	docs := make([]string, 0, len(names))
	for _, name := range names {
		doc, err := LoadDocument(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if doc != "" {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func listTextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".md":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

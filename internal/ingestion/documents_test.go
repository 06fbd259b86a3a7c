package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesWhitespace(t *testing.T) {
	input := "# Resume\r\n\r\n\r\n\r\nJohn    Doe\r\n- Go   experience\r\n"
	got := CleanText(input)

	assert.Equal(t, "# Resume\n\nJohn Doe\n- Go experience", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n"))
}

func TestLoadDocument_NotFound(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found")
}

func TestLoadFirstDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_resume.txt"), []byte("second"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_resume.txt"), []byte("first"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.pdf"), []byte("ignored"), 0644))

	got, err := LoadFirstDocument(dir)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestLoadFirstDocument_EmptyDir(t *testing.T) {
	_, err := LoadFirstDocument(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text documents")
}

func TestLoadAllDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "culture.md"), []byte("We value ownership."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "values.txt"), []byte("Craftsmanship matters."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("   "), 0644))

	docs, err := LoadAllDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "We value ownership.", docs[0])
	assert.Equal(t, "Craftsmanship matters.", docs[1])
}

func TestSplitChunks_OverlapAndCoverage(t *testing.T) {
	text := strings.Repeat("a", 1200)
	chunks := SplitChunks(text, DefaultChunkSize, DefaultChunkOverlap)

	require.NotEmpty(t, chunks)
	assert.Len(t, chunks[0], DefaultChunkSize)
	for i := 1; i < len(chunks); i++ {
		// Consecutive chunks share the overlap region.
		prev := chunks[i-1]
		assert.Equal(t, prev[len(prev)-DefaultChunkOverlap:], chunks[i][:DefaultChunkOverlap])
	}

	// Reassembling without the overlaps reproduces the original length.
	total := len(chunks[0])
	for i := 1; i < len(chunks); i++ {
		total += len(chunks[i]) - DefaultChunkOverlap
	}
	assert.Equal(t, len(text), total)
}

func TestSplitChunks_ShortText(t *testing.T) {
	chunks := SplitChunks("short", DefaultChunkSize, DefaultChunkOverlap)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short", chunks[0])
}

func TestSplitChunks_Empty(t *testing.T) {
	assert.Nil(t, SplitChunks("", DefaultChunkSize, DefaultChunkOverlap))
}

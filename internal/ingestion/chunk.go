package ingestion

// DefaultChunkSize is the character length of one index chunk.
const DefaultChunkSize = 512

// DefaultChunkOverlap is how many characters consecutive chunks share.
const DefaultChunkOverlap = 50

// SplitChunks splits text into fixed-size character chunks with overlap,
// for insertion into the company-material index. Overlap keeps sentences
// that straddle a boundary recoverable from at least one chunk.
func SplitChunks(text string, size, overlap int) []string {
	if text == "" || size <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	step := size - overlap
	chunks := make([]string, 0, len(text)/step+1)
	for start := 0; start < len(text); start += step {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
		if end == len(text) {
			break
		}
	}
	return chunks
}

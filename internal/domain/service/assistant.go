package service

import "context"

// Assistant answers free-text and multimodal questions via a generative AI
// provider.
type Assistant interface {
	// Answer returns the model's response to a free-text question.
	Answer(ctx context.Context, question string) (string, error)

	// AnalyzeFile answers a question about a local media file (image or
	// audio). Implementations remove the file from disk after use.
	AnalyzeFile(ctx context.Context, question, filePath, mimeType string) (string, error)

	// Close releases the underlying client.
	Close() error
}

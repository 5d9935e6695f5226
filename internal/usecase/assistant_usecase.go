package usecase

import "context"

// AskInput defines a free-text assistant question.
type AskInput struct {
	Question string
}

// AnalyzeFileInput defines a question about an uploaded media file. The file
// has already been saved to a local temporary path by the delivery layer.
type AnalyzeFileInput struct {
	Question string
	FilePath string
	MimeType string
}

// BulkAskInput defines a batch of independent questions answered in order.
type BulkAskInput struct {
	Questions []string
}

// BulkAnswer pairs one question with its answer or failure reason.
type BulkAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Error    string `json:"error,omitempty"`
}

// AssistantUsecase defines the interface for AI assistant operations.
type AssistantUsecase interface {
	// Ask answers a single free-text question.
	Ask(ctx context.Context, input *AskInput) (string, error)

	// AnalyzeFile answers a question about an uploaded image or audio file.
	AnalyzeFile(ctx context.Context, input *AnalyzeFileInput) (string, error)

	// BulkAsk answers each question sequentially; individual failures are
	// reported per question and do not abort the batch.
	BulkAsk(ctx context.Context, input *BulkAskInput) ([]*BulkAnswer, error)
}

// Package assistant implements the Assistant interface on the Gemini API.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"musika/config"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/service"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

const systemInstruction = `You are the Musika shopping assistant.
Answer customer questions about products, orders and store policies.
Be concise and factual. If you do not know, say so.`

type geminiAssistant struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

// Params defines the dependencies for the Gemini assistant.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	LC     fx.Lifecycle
}

// NewGeminiAssistant creates a Gemini-backed assistant and registers its
// client shutdown on the fx lifecycle.
func NewGeminiAssistant(params Params) (service.Assistant, error) {
	geminiCfg := params.Config.Gemini
	if geminiCfg == nil || geminiCfg.APIKey == "" {
		return nil, errors.New("gemini configuration is missing")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(geminiCfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	modelName := geminiCfg.Model
	if modelName == "" {
		modelName = defaultModel
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	a := &geminiAssistant{
		client: client,
		model:  model,
		logger: params.Logger,
	}

	params.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return a.Close()
		},
	})

	return a, nil
}

// Answer returns the model's response to a free-text question.
func (a *geminiAssistant) Answer(ctx context.Context, question string) (string, error) {
	resp, err := a.model.GenerateContent(ctx, genai.Text(question))
	if err != nil {
		a.logger.Error("Gemini request failed", slog.Any("error", err))

		return "", domainerrors.ErrAssistantUnavailable.WrapMessage(err.Error())
	}

	return flattenResponse(resp)
}

// AnalyzeFile answers a question about a local media file. The file is
// removed from disk after the request, regardless of outcome.
func (a *geminiAssistant) AnalyzeFile(ctx context.Context, question, filePath, mimeType string) (string, error) {
	defer func() {
		if err := os.Remove(filePath); err != nil {
			a.logger.Warn("Failed to remove uploaded file",
				slog.String("path", filePath),
				slog.Any("error", err),
			)
		}
	}()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to read uploaded file")
	}

	resp, err := a.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(question),
	)
	if err != nil {
		a.logger.Error("Gemini file analysis failed", slog.Any("error", err))

		return "", domainerrors.ErrAssistantUnavailable.WrapMessage(err.Error())
	}

	return flattenResponse(resp)
}

// Close releases the underlying client.
func (a *geminiAssistant) Close() error {
	return a.client.Close()
}

// flattenResponse joins the text parts of the first candidate.
func flattenResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainerrors.ErrAssistantUnavailable.WrapMessage("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		} else {
			sb.WriteString(fmt.Sprintf("%v", part))
		}
	}

	return sb.String(), nil
}

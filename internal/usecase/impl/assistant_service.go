package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "musika/internal/delivery/context"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/service"
	"musika/internal/usecase"

	"go.uber.org/fx"
)

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	assistant service.Assistant
	logger    *slog.Logger
}

// AssistantServiceParams holds dependencies for assistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	Assistant service.Assistant
	Logger    *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		assistant: params.Assistant,
		logger:    params.Logger,
	}
}

func (srv *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ask answers a single free-text question.
func (srv *assistantService) Ask(ctx context.Context, input *usecase.AskInput) (string, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("question must not be empty")
	}

	answer, err := srv.assistant.Answer(ctx, question)
	if err != nil {
		srv.log(ctx).Error("Assistant query failed", slog.Any("error", err))

		return "", err
	}

	return answer, nil
}

// AnalyzeFile answers a question about an uploaded image or audio file.
func (srv *assistantService) AnalyzeFile(ctx context.Context, input *usecase.AnalyzeFileInput) (string, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("question must not be empty")
	}
	if input.FilePath == "" || input.MimeType == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("file and mime type are required")
	}

	answer, err := srv.assistant.AnalyzeFile(ctx, question, input.FilePath, input.MimeType)
	if err != nil {
		srv.log(ctx).Error("Assistant file analysis failed", slog.Any("error", err))

		return "", err
	}

	return answer, nil
}

// BulkAsk answers each question sequentially. A failed question is recorded
// in its answer slot and the batch continues.
func (srv *assistantService) BulkAsk(ctx context.Context, input *usecase.BulkAskInput) ([]*usecase.BulkAnswer, error) {
	if len(input.Questions) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one question is required")
	}

	answers := make([]*usecase.BulkAnswer, 0, len(input.Questions))
	for _, question := range input.Questions {
		trimmed := strings.TrimSpace(question)
		if trimmed == "" {
			answers = append(answers, &usecase.BulkAnswer{
				Question: question,
				Error:    "question must not be empty",
			})

			continue
		}

		answer, err := srv.assistant.Answer(ctx, trimmed)
		if err != nil {
			srv.log(ctx).Warn("Bulk question failed", slog.Any("error", err))
			answers = append(answers, &usecase.BulkAnswer{Question: question, Error: err.Error()})

			continue
		}

		answers = append(answers, &usecase.BulkAnswer{Question: question, Answer: answer})
	}

	return answers, nil
}

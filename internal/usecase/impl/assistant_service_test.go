package impl

import (
	"context"
	"testing"

	domainerrors "musika/internal/domain/errors"
	mockSvc "musika/internal/mocks/service"
	"musika/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssistantService(t *testing.T) (usecase.AssistantUsecase, *mockSvc.MockAssistant) {
	t.Helper()

	mockAssistant := mockSvc.NewMockAssistant(t)
	svc := NewAssistantService(AssistantServiceParams{
		Assistant: mockAssistant,
		Logger:    newDiscardLogger(),
	})

	return svc, mockAssistant
}

func TestAssistantService_Ask(t *testing.T) {
	svc, mockAssistant := newAssistantService(t)
	ctx := context.Background()

	mockAssistant.EXPECT().
		Answer(ctx, "What mbira models do you stock?").
		Return("We stock 22-key and 24-key nyunga nyunga mbiras.", nil)

	answer, err := svc.Ask(ctx, &usecase.AskInput{Question: "  What mbira models do you stock?  "})
	require.NoError(t, err)
	assert.Equal(t, "We stock 22-key and 24-key nyunga nyunga mbiras.", answer)
}

func TestAssistantService_Ask_EmptyQuestion(t *testing.T) {
	svc, _ := newAssistantService(t)

	answer, err := svc.Ask(context.Background(), &usecase.AskInput{Question: "   "})
	assert.Empty(t, answer)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssistantService_AnalyzeFile(t *testing.T) {
	svc, mockAssistant := newAssistantService(t)
	ctx := context.Background()

	mockAssistant.EXPECT().
		AnalyzeFile(ctx, "What is in this image?", "/tmp/upload-1.png", "image/png").
		Return("A wooden mbira on a table.", nil)

	answer, err := svc.AnalyzeFile(ctx, &usecase.AnalyzeFileInput{
		Question: "What is in this image?",
		FilePath: "/tmp/upload-1.png",
		MimeType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, "A wooden mbira on a table.", answer)
}

func TestAssistantService_AnalyzeFile_MissingFile(t *testing.T) {
	svc, _ := newAssistantService(t)

	answer, err := svc.AnalyzeFile(context.Background(), &usecase.AnalyzeFileInput{
		Question: "What is in this image?",
	})

	assert.Empty(t, answer)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssistantService_BulkAsk_PartialFailure(t *testing.T) {
	svc, mockAssistant := newAssistantService(t)
	ctx := context.Background()

	mockAssistant.EXPECT().Answer(ctx, "first").Return("answer one", nil)
	mockAssistant.EXPECT().Answer(ctx, "second").Return("", errors.New("model overloaded"))

	answers, err := svc.BulkAsk(ctx, &usecase.BulkAskInput{
		Questions: []string{"first", "second", "  "},
	})

	require.NoError(t, err)
	require.Len(t, answers, 3)

	assert.Equal(t, "answer one", answers[0].Answer)
	assert.Empty(t, answers[0].Error)

	assert.Empty(t, answers[1].Answer)
	assert.Equal(t, "model overloaded", answers[1].Error)

	assert.Equal(t, "question must not be empty", answers[2].Error)
}

func TestAssistantService_BulkAsk_Empty(t *testing.T) {
	svc, _ := newAssistantService(t)

	answers, err := svc.BulkAsk(context.Background(), &usecase.BulkAskInput{})
	assert.Nil(t, answers)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

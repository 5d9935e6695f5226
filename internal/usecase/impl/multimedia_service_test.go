package impl

import (
	"context"
	"testing"

	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	mockRepo "musika/internal/mocks/repository"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMultimediaService(t *testing.T) (usecase.MultimediaUsecase, *mockRepo.MockMultimediaRepository) {
	t.Helper()

	mockMultimediaRepo := mockRepo.NewMockMultimediaRepository(t)
	svc := NewMultimediaService(MultimediaServiceParams{
		MultimediaRepo: mockMultimediaRepo,
		Logger:         newDiscardLogger(),
	})

	return svc, mockMultimediaRepo
}

func TestMultimediaService_Create(t *testing.T) {
	svc, mockMultimediaRepo := newMultimediaService(t)
	ctx := context.Background()
	userID := uuid.New()

	mockMultimediaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Multimedia")).
		Return(nil)

	media, err := svc.CreateMultimedia(ctx, &usecase.CreateMultimediaInput{
		UserID:        userID,
		FileType:      entity.FileTypeImage,
		URL:           "https://cdn.musika.example/uploads/receipt.png",
		ExtractedText: "Invoice #42",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, media.UserID)
	assert.Equal(t, entity.FileTypeImage, media.FileType)
	require.NotNil(t, media.ExtractedText)
	assert.Equal(t, "Invoice #42", *media.ExtractedText)
}

func TestMultimediaService_Create_NoExtractedText(t *testing.T) {
	svc, mockMultimediaRepo := newMultimediaService(t)
	ctx := context.Background()

	mockMultimediaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Multimedia")).
		Return(nil)

	media, err := svc.CreateMultimedia(ctx, &usecase.CreateMultimediaInput{
		UserID:   uuid.New(),
		FileType: entity.FileTypeAudio,
		URL:      "https://cdn.musika.example/uploads/voice-note.ogg",
	})

	require.NoError(t, err)
	assert.Nil(t, media.ExtractedText)
}

func TestMultimediaService_Create_InvalidFileType(t *testing.T) {
	svc, _ := newMultimediaService(t)

	media, err := svc.CreateMultimedia(context.Background(), &usecase.CreateMultimediaInput{
		UserID:   uuid.New(),
		FileType: "spreadsheet",
		URL:      "https://cdn.musika.example/uploads/data.xlsx",
	})

	assert.Nil(t, media)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
}

func TestMultimediaService_Get_NotFound(t *testing.T) {
	svc, mockMultimediaRepo := newMultimediaService(t)
	ctx := context.Background()
	id := uuid.New()

	mockMultimediaRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMultimediaNotFound)

	media, err := svc.GetMultimedia(ctx, id)
	assert.Nil(t, media)
	assert.ErrorIs(t, err, domainerrors.ErrMultimediaNotFound)
}

func TestMultimediaService_Delete_NotFound(t *testing.T) {
	svc, mockMultimediaRepo := newMultimediaService(t)
	ctx := context.Background()
	id := uuid.New()

	mockMultimediaRepo.EXPECT().Delete(ctx, id).Return(repository.ErrMultimediaNotFound)

	err := svc.DeleteMultimedia(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrMultimediaNotFound)
}

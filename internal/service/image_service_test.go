package service_test

import (
	"context"
	"errors"
	"testing"

	"gameforge/internal/mocks"
	"gameforge/internal/models"
	"gameforge/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newImageTask(subject models.ImageSubject, name string) models.ImageTask {
	return models.ImageTask{
		TaskID:    uuid.NewString(),
		OwnerID:   uuid.New(),
		GameID:    uuid.New(),
		Subject:   subject,
		SubjectID: uuid.New(),
		Name:      name,
		Prompt:    "Portrait of " + name,
	}
}

func TestHandleImageTask_Character(t *testing.T) {
	generator := mocks.NewMockImageGenerator(t)
	store := mocks.NewMockImageStore(t)
	characters := mocks.NewMockCharacterRepository(t)
	locations := mocks.NewMockLocationRepository(t)
	notifier := mocks.NewMockClientNotifier(t)
	svc := service.NewImageService(nil, generator, store, characters, locations, notifier, zap.NewNop())

	task := newImageTask(models.ImageSubjectCharacter, "Héros Noir")
	generator.On("GenerateImageURL", mock.Anything, task.Prompt).Return("https://img.example/1.png", nil)
	store.On("DownloadAndSave", mock.Anything, "https://img.example/1.png", "character_Heros_Noir.jpg", "characters").
		Return("characters/character_Heros_Noir.jpg", nil)
	characters.On("UpdateImagePath", mock.Anything, mock.Anything, task.SubjectID, "characters/character_Heros_Noir.jpg").Return(nil)
	notifier.On("NotifyUser", task.OwnerID, models.EventImageReady, mock.Anything).Return()

	require.NoError(t, svc.HandleImageTask(context.Background(), task))
}

func TestHandleImageTask_Location(t *testing.T) {
	generator := mocks.NewMockImageGenerator(t)
	store := mocks.NewMockImageStore(t)
	characters := mocks.NewMockCharacterRepository(t)
	locations := mocks.NewMockLocationRepository(t)
	svc := service.NewImageService(nil, generator, store, characters, locations, nil, zap.NewNop())

	task := newImageTask(models.ImageSubjectLocation, "Forêt ancienne")
	generator.On("GenerateImageURL", mock.Anything, task.Prompt).Return("https://img.example/2.png", nil)
	store.On("DownloadAndSave", mock.Anything, mock.Anything, "location_Foret_ancienne.jpg", "locations").
		Return("locations/location_Foret_ancienne.jpg", nil)
	locations.On("UpdateImagePath", mock.Anything, mock.Anything, task.SubjectID, "locations/location_Foret_ancienne.jpg").Return(nil)

	require.NoError(t, svc.HandleImageTask(context.Background(), task))
}

func TestHandleImageTask_GeneratorFailure(t *testing.T) {
	generator := mocks.NewMockImageGenerator(t)
	store := mocks.NewMockImageStore(t)
	svc := service.NewImageService(nil, generator, store, mocks.NewMockCharacterRepository(t),
		mocks.NewMockLocationRepository(t), nil, zap.NewNop())

	task := newImageTask(models.ImageSubjectCharacter, "Mara")
	generator.On("GenerateImageURL", mock.Anything, mock.Anything).Return("", errors.New("quota"))

	err := svc.HandleImageTask(context.Background(), task)
	assert.ErrorIs(t, err, service.ErrGeneratorUnavailable)
	store.AssertNotCalled(t, "DownloadAndSave", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleImageTask_UnknownSubject(t *testing.T) {
	svc := service.NewImageService(nil, mocks.NewMockImageGenerator(t), mocks.NewMockImageStore(t),
		mocks.NewMockCharacterRepository(t), mocks.NewMockLocationRepository(t), nil, zap.NewNop())

	err := svc.HandleImageTask(context.Background(), newImageTask("vehicle", "Truck"))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestHandleImageTask_SubjectDeleted(t *testing.T) {
	generator := mocks.NewMockImageGenerator(t)
	store := mocks.NewMockImageStore(t)
	characters := mocks.NewMockCharacterRepository(t)
	notifier := mocks.NewMockClientNotifier(t)
	svc := service.NewImageService(nil, generator, store, characters, mocks.NewMockLocationRepository(t), notifier, zap.NewNop())

	task := newImageTask(models.ImageSubjectCharacter, "Mara")
	generator.On("GenerateImageURL", mock.Anything, mock.Anything).Return("https://img.example/3.png", nil)
	store.On("DownloadAndSave", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("characters/character_Mara.jpg", nil)
	characters.On("UpdateImagePath", mock.Anything, mock.Anything, task.SubjectID, mock.Anything).Return(models.ErrNotFound)

	err := svc.HandleImageTask(context.Background(), task)
	assert.ErrorIs(t, err, models.ErrNotFound)
	notifier.AssertNotCalled(t, "NotifyUser", mock.Anything, mock.Anything, mock.Anything)
}

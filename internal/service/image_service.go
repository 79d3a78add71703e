package service

import (
	"context"
	"fmt"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"
	"gameforge/pkg/utils"

	"go.uber.org/zap"
)

type imageServiceImpl struct {
	db         interfaces.DBTX
	generator  interfaces.ImageGenerator
	store      interfaces.ImageStore
	characters interfaces.CharacterRepository
	locations  interfaces.LocationRepository
	notifier   interfaces.ClientNotifier
	logger     *zap.Logger
}

var _ interfaces.ImageTaskHandler = (*imageServiceImpl)(nil)

// NewImageService creates the image task handler. notifier may be nil.
func NewImageService(
	db interfaces.DBTX,
	generator interfaces.ImageGenerator,
	store interfaces.ImageStore,
	characters interfaces.CharacterRepository,
	locations interfaces.LocationRepository,
	notifier interfaces.ClientNotifier,
	logger *zap.Logger,
) interfaces.ImageTaskHandler {
	return &imageServiceImpl{
		db:         db,
		generator:  generator,
		store:      store,
		characters: characters,
		locations:  locations,
		notifier:   notifier,
		logger:     logger.Named("ImageService"),
	}
}

// ImageFilename is the sanitized file name for a subject's illustration.
func ImageFilename(subject models.ImageSubject, name string) string {
	return utils.SanitizeFilename(fmt.Sprintf("%s_%s.jpg", subject, name))
}

// HandleImageTask generates, downloads and records one illustration.
func (s *imageServiceImpl) HandleImageTask(ctx context.Context, task models.ImageTask) (err error) {
	logFields := []zap.Field{
		zap.String("taskID", task.TaskID),
		zap.Stringer("gameID", task.GameID),
		zap.String("subject", string(task.Subject)),
		zap.Stringer("subjectID", task.SubjectID),
	}
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		imageTasksTotal.WithLabelValues(string(task.Subject), status).Inc()
	}()

	if task.Subject != models.ImageSubjectCharacter && task.Subject != models.ImageSubjectLocation {
		s.logger.Warn("Unknown image subject", logFields...)
		return fmt.Errorf("%w: unknown image subject '%s'", ErrInvalidInput, task.Subject)
	}

	url, err := s.generator.GenerateImageURL(ctx, task.Prompt)
	if err != nil {
		s.logger.Warn("Image generation failed", append(logFields, zap.Error(err))...)
		return fmt.Errorf("%w: %v", ErrGeneratorUnavailable, err)
	}

	filename := ImageFilename(task.Subject, task.Name)
	imagePath, err := s.store.DownloadAndSave(ctx, url, filename, task.Subject.Subfolder())
	if err != nil {
		s.logger.Error("Failed to save image", append(logFields, zap.Error(err))...)
		return err
	}

	switch task.Subject {
	case models.ImageSubjectCharacter:
		err = s.characters.UpdateImagePath(ctx, s.db, task.SubjectID, imagePath)
	case models.ImageSubjectLocation:
		err = s.locations.UpdateImagePath(ctx, s.db, task.SubjectID, imagePath)
	}
	if err != nil {
		s.logger.Error("Failed to record image path", append(logFields, zap.Error(err))...)
		return err
	}

	s.logger.Info("Image ready", append(logFields, zap.String("path", imagePath))...)
	if s.notifier != nil {
		s.notifier.NotifyUser(task.OwnerID, models.EventImageReady, map[string]interface{}{
			"game_id":    task.GameID,
			"subject":    task.Subject,
			"subject_id": task.SubjectID,
			"image_path": imagePath,
		})
	}
	return nil
}

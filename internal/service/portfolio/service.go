package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	portfolioRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/portfolio"
	"github.com/m04kA/SMC-NailStudio/internal/integrations/imagestore"
	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
)

var validate = validator.New()

// Service сервис портфолио работ
type Service struct {
	repo   PortfolioRepository
	images ImageStore // nil, если хранилище изображений выключено
	logger Logger
}

// NewService создает новый экземпляр сервиса портфолио
func NewService(repo PortfolioRepository, images ImageStore, logger Logger) *Service {
	return &Service{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// List возвращает работы, опционально только избранные
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context, featuredOnly bool) (*models.ItemListResponse, error) {
	items, err := s.repo.List(ctx, featuredOnly)
	if err != nil {
		s.logger.Error("List: repository error, featuredOnly=%t: %v", featuredOnly, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemList(items), nil
}

// Create загружает изображение и сохраняет работу.
// Если запись в БД не удалась, загруженный объект удаляется.
func (s *Service) Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Create: creating portfolio item title=%q, size=%d, type=%s", req.Title, req.ImageSize, req.ContentType)

	if s.images == nil {
		s.logger.Warn("Create: image store is not configured")
		return nil, ErrUploadsDisabled
	}

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Image == nil || req.ImageSize <= 0 {
		return nil, fmt.Errorf("%w: image is required", ErrInvalidInput)
	}

	upload, err := s.images.Upload(ctx, req.Image, req.ImageSize, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, imagestore.ErrUnsupportedType):
			s.logger.Warn("Create: %v", err)
			return nil, ErrUnsupportedImage
		case errors.Is(err, imagestore.ErrTooLarge):
			s.logger.Warn("Create: %v", err)
			return nil, ErrImageTooLarge
		default:
			s.logger.Error("Create: upload failed: %v", err)
			return nil, fmt.Errorf("%w: Create - upload: %v", ErrInternal, err)
		}
	}

	item := req.ToDomainItem()
	item.ImageURL = upload.URL
	item.ObjectKey = upload.ObjectKey

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		if rmErr := s.images.Remove(ctx, upload.ObjectKey); rmErr != nil {
			s.logger.Warn("Create: failed to remove orphan object key=%s: %v", upload.ObjectKey, rmErr)
		}
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created portfolio item id=%s", created.ID)
	return models.FromDomainItem(created), nil
}

// Update частично обновляет подпись, теги, порядок и флаг избранного.
// Изображение работы не меняется.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Update: updating portfolio item id=%s", id)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for item id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if update.Title != nil && *update.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, portfolioRepo.ErrItemNotFound) {
			s.logger.Warn("Update: portfolio item id=%s not found", id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("Update: repository error for item id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated portfolio item id=%s", id)
	return models.FromDomainItem(updated), nil
}

// Delete удаляет работу и её изображение
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting portfolio item id=%s", id)

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, portfolioRepo.ErrItemNotFound) {
			s.logger.Warn("Delete: portfolio item id=%s not found", id)
			return ErrItemNotFound
		}
		s.logger.Error("Delete: repository error for item id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, portfolioRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("Delete: repository error for item id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Объект без строки в БД никому не виден, ошибку удаления только логируем
	if s.images != nil {
		if err := s.images.Remove(ctx, item.ObjectKey); err != nil {
			s.logger.Warn("Delete: failed to remove object key=%s: %v", item.ObjectKey, err)
		}
	}

	s.logger.Info("Delete: successfully deleted portfolio item id=%s", id)
	return nil
}

package models

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

// Request модели

// CreateItemRequest новая работа вместе с изображением
type CreateItemRequest struct {
	Title        string   `validate:"required,max=120"`
	Description  string   `validate:"max=2000"`
	Tags         []string `validate:"max=20,dive,max=40"`
	IsFeatured   bool
	DisplayOrder int `validate:"gte=0"`

	Image       io.Reader `validate:"-"`
	ImageSize   int64     `validate:"-"`
	ContentType string    `validate:"-"`
}

// ToDomainItem конвертирует request в domain модель без данных об изображении
func (r *CreateItemRequest) ToDomainItem() *domain.PortfolioItem {
	return &domain.PortfolioItem{
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		Tags:         cleanTags(r.Tags),
		IsFeatured:   r.IsFeatured,
		DisplayOrder: r.DisplayOrder,
	}
}

// UpdateItemRequest частичное обновление работы
// Все поля опциональны - обновляются только переданные значения
type UpdateItemRequest struct {
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=1,max=120"`
	Description  *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Tags         *[]string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=40"`
	IsFeatured   *bool     `json:"isFeatured,omitempty"`
	DisplayOrder *int      `json:"displayOrder,omitempty" validate:"omitempty,gte=0"`
}

// ToDomainUpdate конвертирует request в domain модель частичного обновления
func (r *UpdateItemRequest) ToDomainUpdate() *domain.PortfolioItemUpdate {
	update := &domain.PortfolioItemUpdate{
		IsFeatured:   r.IsFeatured,
		DisplayOrder: r.DisplayOrder,
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		update.Title = &title
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		update.Description = &description
	}
	if r.Tags != nil {
		tags := cleanTags(*r.Tags)
		update.Tags = &tags
	}
	return update
}

func cleanTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Response модели

// ItemResponse работа портфолио
type ItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Tags         []string  `json:"tags"`
	IsFeatured   bool      `json:"isFeatured"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ItemListResponse список работ
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// Методы конвертации

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(item *domain.PortfolioItem) *ItemResponse {
	if item == nil {
		return nil
	}

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	return &ItemResponse{
		ID:           item.ID,
		Title:        item.Title,
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		Tags:         tags,
		IsFeatured:   item.IsFeatured,
		DisplayOrder: item.DisplayOrder,
		CreatedAt:    item.CreatedAt,
	}
}

// FromDomainItemList конвертирует список domain моделей в DTO
func FromDomainItemList(items []*domain.PortfolioItem) *ItemListResponse {
	resp := &ItemListResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, item := range items {
		if r := FromDomainItem(item); r != nil {
			resp.Items = append(resp.Items, *r)
		}
	}
	return resp
}

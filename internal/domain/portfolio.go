package domain

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioItem работа в портфолио
type PortfolioItem struct {
	ID           uuid.UUID
	Title        string
	Description  string
	ImageURL     string
	ObjectKey    string // ключ объекта в хранилище изображений
	Tags         []string
	IsFeatured   bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PortfolioItemUpdate частичное обновление работы, nil поля не меняются.
// Изображение не меняется: для новой картинки создается новая работа.
type PortfolioItemUpdate struct {
	Title        *string
	Description  *string
	Tags         *[]string
	IsFeatured   *bool
	DisplayOrder *int
}

// IsEmpty нечего обновлять
func (u *PortfolioItemUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Tags == nil &&
		u.IsFeatured == nil && u.DisplayOrder == nil
}

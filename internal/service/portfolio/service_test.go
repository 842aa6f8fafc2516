package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	portfolioRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/portfolio"
	"github.com/m04kA/SMC-NailStudio/internal/integrations/imagestore"
	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
	"github.com/m04kA/SMC-NailStudio/pkg/ptr"
)

type fakeRepo struct {
	items     map[uuid.UUID]*domain.PortfolioItem
	createErr error
}

func (f *fakeRepo) Create(_ context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	item.ID = uuid.New()
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PortfolioItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, portfolioRepo.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeRepo) List(_ context.Context, featuredOnly bool) ([]*domain.PortfolioItem, error) {
	var out []*domain.PortfolioItem
	for _, item := range f.items {
		if !featuredOnly || item.IsFeatured {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, update *domain.PortfolioItemUpdate) (*domain.PortfolioItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, portfolioRepo.ErrItemNotFound
	}
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Tags != nil {
		item.Tags = *update.Tags
	}
	if update.IsFeatured != nil {
		item.IsFeatured = *update.IsFeatured
	}
	if update.DisplayOrder != nil {
		item.DisplayOrder = *update.DisplayOrder
	}
	return item, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

type fakeImages struct {
	uploaded []string
	removed  []string
	err      error
}

func (f *fakeImages) Upload(_ context.Context, r io.Reader, _ int64, _ string) (*imagestore.Upload, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("obj-%d.jpg", len(f.uploaded))
	f.uploaded = append(f.uploaded, key)
	return &imagestore.Upload{ObjectKey: key, URL: "http://cdn.local/portfolio-images/" + key}, nil
}

func (f *fakeImages) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

func newRequest() *models.CreateItemRequest {
	body := "jpeg-bytes"
	return &models.CreateItemRequest{
		Title:       "Francesitas",
		Tags:        []string{" gel ", "", "francesa"},
		IsFeatured:  true,
		Image:       strings.NewReader(body),
		ImageSize:   int64(len(body)),
		ContentType: "image/jpeg",
	}
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{items: map[uuid.UUID]*domain.PortfolioItem{}}
	images := &fakeImages{}
	svc := NewService(repo, images, logger.NewNop())

	resp, err := svc.Create(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.local/portfolio-images/obj-0.jpg", resp.ImageURL)
	assert.Equal(t, []string{"gel", "francesa"}, resp.Tags)
	assert.Equal(t, "obj-0.jpg", repo.items[resp.ID].ObjectKey)
}

func TestCreate_RepositoryFailureRemovesObject(t *testing.T) {
	repo := &fakeRepo{items: map[uuid.UUID]*domain.PortfolioItem{}, createErr: errors.New("db down")}
	images := &fakeImages{}
	svc := NewService(repo, images, logger.NewNop())

	_, err := svc.Create(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, images.uploaded, images.removed)
}

func TestCreate_Errors(t *testing.T) {
	repo := &fakeRepo{items: map[uuid.UUID]*domain.PortfolioItem{}}

	_, err := NewService(repo, nil, logger.NewNop()).Create(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrUploadsDisabled)

	unsupported := &fakeImages{err: fmt.Errorf("%w: %q", imagestore.ErrUnsupportedType, "image/bmp")}
	_, err = NewService(repo, unsupported, logger.NewNop()).Create(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	tooLarge := &fakeImages{err: imagestore.ErrTooLarge}
	_, err = NewService(repo, tooLarge, logger.NewNop()).Create(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrImageTooLarge)

	noTitle := newRequest()
	noTitle.Title = ""
	_, err = NewService(repo, &fakeImages{}, logger.NewNop()).Create(context.Background(), noTitle)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noImage := newRequest()
	noImage.Image = nil
	_, err = NewService(repo, &fakeImages{}, logger.NewNop()).Create(context.Background(), noImage)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	item := &domain.PortfolioItem{ID: uuid.New(), Title: "Nail art", ObjectKey: "a.png"}
	repo := &fakeRepo{items: map[uuid.UUID]*domain.PortfolioItem{item.ID: item}}
	images := &fakeImages{}
	svc := NewService(repo, images, logger.NewNop())

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	assert.Empty(t, repo.items)
	assert.Equal(t, []string{"a.png"}, images.removed)

	assert.ErrorIs(t, svc.Delete(context.Background(), item.ID), ErrItemNotFound)
}

func TestList_FeaturedOnly(t *testing.T) {
	featured := &domain.PortfolioItem{ID: uuid.New(), IsFeatured: true}
	regular := &domain.PortfolioItem{ID: uuid.New()}
	repo := &fakeRepo{items: map[uuid.UUID]*domain.PortfolioItem{featured.ID: featured, regular.ID: regular}}
	svc := NewService(repo, nil, logger.NewNop())

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, featured.ID, resp.Items[0].ID)
	assert.NotNil(t, resp.Items[0].Tags)
}

func TestUpdate(t *testing.T) {
	item := &domain.PortfolioItem{ID: uuid.New(), Title: "Nail art", Tags: []string{"gel"}, ObjectKey: "a.png", DisplayOrder: 3}
	repo := &fakeRepo{items: map[uuid.UUID]*domain.PortfolioItem{item.ID: item}}
	svc := NewService(repo, nil, logger.NewNop())

	tags := []string{" flores ", "", "gel"}
	resp, err := svc.Update(context.Background(), item.ID, &models.UpdateItemRequest{
		Title:      ptr.Ptr("  Nail art floral "),
		Tags:       &tags,
		IsFeatured: ptr.Ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Nail art floral", resp.Title)
	assert.Equal(t, []string{"flores", "gel"}, resp.Tags)
	assert.True(t, resp.IsFeatured)
	assert.Equal(t, 3, resp.DisplayOrder)
	assert.Equal(t, "a.png", repo.items[item.ID].ObjectKey)
}

func TestUpdate_Errors(t *testing.T) {
	item := &domain.PortfolioItem{ID: uuid.New(), Title: "Nail art"}
	repo := &fakeRepo{items: map[uuid.UUID]*domain.PortfolioItem{item.ID: item}}
	svc := NewService(repo, nil, logger.NewNop())
	ctx := context.Background()

	tests := []struct {
		name string
		id   uuid.UUID
		req  *models.UpdateItemRequest
		want error
	}{
		{name: "empty update", id: item.ID, req: &models.UpdateItemRequest{}, want: ErrInvalidInput},
		{name: "blank title", id: item.ID, req: &models.UpdateItemRequest{Title: ptr.Ptr("   ")}, want: ErrInvalidInput},
		{name: "negative order", id: item.ID, req: &models.UpdateItemRequest{DisplayOrder: ptr.Ptr(-1)}, want: ErrInvalidInput},
		{name: "unknown item", id: uuid.New(), req: &models.UpdateItemRequest{IsFeatured: ptr.Ptr(false)}, want: ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, tt.id, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, "Nail art", item.Title)
}

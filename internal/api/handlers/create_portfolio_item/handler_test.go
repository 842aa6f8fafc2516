package create_portfolio_item

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio"
	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
)

type fakeService struct {
	req   *models.CreateItemRequest
	image []byte
	err   error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	f.req = req
	f.image, _ = io.ReadAll(req.Image)
	if f.err != nil {
		return nil, f.err
	}
	return &models.ItemResponse{ID: uuid.New(), Title: req.Title, Tags: req.Tags}, nil
}

func multipartRequest(t *testing.T, contentType string, withImage bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Nail art floral"))
	require.NoError(t, mw.WriteField("tags", "gel,flores"))
	require.NoError(t, mw.WriteField("isFeatured", "true"))

	if withImage {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="floral.png"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/portfolio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, 1<<20, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, multipartRequest(t, "image/png", true))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Nail art floral", svc.req.Title)
	assert.Equal(t, []string{"gel", "flores"}, svc.req.Tags)
	assert.True(t, svc.req.IsFeatured)
	assert.Equal(t, "image/png", svc.req.ContentType)
	assert.Equal(t, int64(len("png-bytes")), svc.req.ImageSize)
	assert.Equal(t, []byte("png-bytes"), svc.image)
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, 1<<20, logger.NewNop()).Handle(rec, multipartRequest(t, "image/png", false))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: portfolio.ErrUnsupportedImage}, 1<<20, logger.NewNop()).Handle(rec, multipartRequest(t, "image/bmp", true))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: portfolio.ErrUploadsDisabled}, 1<<20, logger.NewNop()).Handle(rec, multipartRequest(t, "image/png", true))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

package create_portfolio_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-NailStudio/internal/api/handlers"
	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio"
)

const (
	msgInvalidForm      = "formulario inválido, se requiere una imagen"
	msgInvalidItem      = "datos del trabajo inválidos"
	msgUnsupportedImage = "formato de imagen no soportado (jpeg, png, webp, gif)"
	msgImageTooLarge    = "la imagen es demasiado grande"
	msgUploadsDisabled  = "la carga de imágenes no está disponible"
)

type Handler struct {
	service   PortfolioService
	maxUpload int64
	logger    Logger
}

// NewHandler maxUpload - лимит размера тела запроса в байтах
func NewHandler(service PortfolioService, maxUpload int64, logger Logger) *Handler {
	return &Handler{
		service:   service,
		maxUpload: maxUpload,
		logger:    logger,
	}
}

// Handle POST /api/v1/admin/portfolio (multipart/form-data)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Небольшой запас под остальные поля формы
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /admin/portfolio - Request too large: %v", err)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
			return
		}
		h.logger.Warn("POST /admin/portfolio - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	req, file, err := ToServiceRequest(r)
	if err != nil {
		h.logger.Warn("POST /admin/portfolio - Invalid form fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, portfolio.ErrUnsupportedImage):
			h.logger.Warn("POST /admin/portfolio - Unsupported image: content_type=%s", req.ContentType)
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedImage)

		case errors.Is(err, portfolio.ErrImageTooLarge):
			h.logger.Warn("POST /admin/portfolio - Image too large: size=%d", req.ImageSize)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)

		case errors.Is(err, portfolio.ErrUploadsDisabled):
			h.logger.Warn("POST /admin/portfolio - Uploads disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUploadsDisabled)

		case errors.Is(err, portfolio.ErrInvalidInput):
			h.logger.Warn("POST /admin/portfolio - Invalid item: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItem)

		default:
			h.logger.Error("POST /admin/portfolio - Failed to create item: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/portfolio - Item created: item_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

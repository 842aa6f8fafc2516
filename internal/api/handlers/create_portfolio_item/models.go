package create_portfolio_item

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
)

// ToServiceRequest собирает запрос из multipart формы.
// Поля: title, description, tags (через запятую), isFeatured, displayOrder, image (файл).
func ToServiceRequest(r *http.Request) (*models.CreateItemRequest, multipart.File, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, nil, fmt.Errorf("image: %w", err)
	}

	req := &models.CreateItemRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Image:       file,
		ImageSize:   header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}

	if tags := r.FormValue("tags"); tags != "" {
		req.Tags = strings.Split(tags, ",")
	}

	if featured := r.FormValue("isFeatured"); featured != "" {
		if req.IsFeatured, err = strconv.ParseBool(featured); err != nil {
			file.Close()
			return nil, nil, fmt.Errorf("isFeatured: %w", err)
		}
	}

	if order := r.FormValue("displayOrder"); order != "" {
		if req.DisplayOrder, err = strconv.Atoi(order); err != nil {
			file.Close()
			return nil, nil, fmt.Errorf("displayOrder: %w", err)
		}
	}

	return req, file, nil
}

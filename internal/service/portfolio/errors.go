package portfolio

import "errors"

var (
	// ErrItemNotFound возвращается, когда работа не найдена
	ErrItemNotFound = errors.New("portfolio item not found")

	// ErrUnsupportedImage возвращается для неподдерживаемого формата изображения
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrImageTooLarge возвращается, когда изображение больше лимита
	ErrImageTooLarge = errors.New("image is too large")

	// ErrUploadsDisabled возвращается, когда хранилище изображений не настроено
	ErrUploadsDisabled = errors.New("image uploads are disabled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

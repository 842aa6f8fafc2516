package imagestore

import "errors"

var (
	// ErrUnsupportedType возвращается для файлов, которые не являются разрешёнными изображениями
	ErrUnsupportedType = errors.New("imagestore: unsupported content type")

	// ErrTooLarge возвращается, когда файл больше допустимого размера
	ErrTooLarge = errors.New("imagestore: file too large")

	// ErrUpload возвращается при ошибке загрузки в хранилище
	ErrUpload = errors.New("imagestore: upload failed")

	// ErrRemove возвращается при ошибке удаления из хранилища
	ErrRemove = errors.New("imagestore: remove failed")
)

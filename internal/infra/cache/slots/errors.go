package slots

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("slots.cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи в Redis
	ErrCacheWrite = errors.New("slots.cache: failed to write")

	// ErrCacheDecode возвращается, когда значение в кэше не разбирается
	ErrCacheDecode = errors.New("slots.cache: failed to decode value")
)

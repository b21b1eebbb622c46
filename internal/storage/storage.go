// Package storage — клиент внешнего хостинга бинарных ассетов.
// Ядро видит только пару {url, publicId}; publicId — ключ объекта в бакете.
package storage

import (
	"context"
	"io"
)

// AssetInfo — результат загрузки: публичная ссылка и внешний идентификатор.
type AssetInfo struct {
	URL      string
	PublicID string
}

// AssetStore — контракт хостинга ассетов, потребляемый сервисами.
// Upload и Delete могут падать как временно, так и постоянно; политика
// обработки (fail-fast или fire-and-continue) — на стороне вызывающего.
type AssetStore interface {
	Upload(ctx context.Context, folder, name string, reader io.Reader, size int64, contentType string) (AssetInfo, error)
	Delete(ctx context.Context, publicID string) error
}

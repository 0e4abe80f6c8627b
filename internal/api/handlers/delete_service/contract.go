package delete_service

import "context"

// CatalogService интерфейс сервиса каталога услуг
type CatalogService interface {
	Delete(ctx context.Context, serviceID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

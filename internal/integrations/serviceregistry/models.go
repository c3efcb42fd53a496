package serviceregistry

// Service услуга из внешнего реестра услуг
// Ядру вместимости от услуги нужен только факт её существования;
// цены, описания и прочие атрибуты остаются во владении реестра
type Service struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

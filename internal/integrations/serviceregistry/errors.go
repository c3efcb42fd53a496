package serviceregistry

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в реестре
	ErrServiceNotFound = errors.New("serviceregistry: service not found")

	// ErrInvalidResponse возвращается при некорректном ответе реестра
	ErrInvalidResponse = errors.New("serviceregistry: invalid response")

	// ErrInternal возвращается при сетевых и прочих внутренних ошибках клиента
	ErrInternal = errors.New("serviceregistry: internal error")
)

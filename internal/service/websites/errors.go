package websites

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных регистрации
	ErrInvalidInput = errors.New("websites.service: invalid input data")

	// ErrDuplicate возвращается, когда сайт с таким именем или email уже зарегистрирован
	ErrDuplicate = errors.New("websites.service: website already registered")

	// ErrUnauthorized возвращается при отсутствующем или неизвестном токене
	ErrUnauthorized = errors.New("websites.service: invalid access token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("websites.service: internal error")
)

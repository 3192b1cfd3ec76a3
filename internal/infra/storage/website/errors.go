package website

import "errors"

var (
	// ErrWebsiteNotFound возвращается, когда сайт не найден
	ErrWebsiteNotFound = errors.New("website.repository: website not found")

	// ErrDuplicateWebsite возвращается при повторной регистрации имени, email или токена
	ErrDuplicateWebsite = errors.New("website.repository: website already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("website.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("website.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("website.repository: failed to scan row")
)

package apperrors

import "errors"

// Классы ошибок системы. Вызывающая сторона выбирает политику
// (деградация или отказ) через errors.Is, а не по тексту сообщения.
var (
	// ErrDependency - внешний сервис (extraction, geocoding) недоступен
	// или вернул некорректный ответ. Восстанавливается локальным фолбэком.
	ErrDependency = errors.New("dependency failure")

	// ErrStorage - хранилище недоступно. Ответ отправителю все равно доставляется.
	ErrStorage = errors.New("storage failure")

	// ErrNotFound - запись не найдена. На границе дашборда трактуется как no-op.
	ErrNotFound = errors.New("not found")

	// ErrValidation - некорректный входящий запрос. Единственный класс,
	// который виден вызывающей стороне как ошибка транспорта.
	ErrValidation = errors.New("validation failure")
)

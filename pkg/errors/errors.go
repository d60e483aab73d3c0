package errors

import "fmt"

var (
	// Аутентификация
	ErrInvalidCredentials = fmt.Errorf("неверный телефон или пароль")
	ErrUserInactive       = fmt.Errorf("аккаунт деактивирован")
	ErrUserExists         = fmt.Errorf("пользователь с таким телефоном уже существует")
	ErrWeakPassword       = fmt.Errorf("пароль должен быть минимум 6 символов")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

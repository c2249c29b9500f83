package service

import "errors"

// Ошибки бизнес-логики; обработчики HTTP сопоставляют их со статусами.
var (
	ErrValidation         = errors.New("некорректные данные запроса")
	ErrNotFound           = errors.New("не найдено")
	ErrEmailTaken         = errors.New("пользователь с таким email уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)

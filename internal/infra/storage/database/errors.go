package database

import "errors"

var (
	// ErrConnect возвращается, если не удалось открыть соединение с БД
	ErrConnect = errors.New("database.provider: failed to connect")

	// ErrInvalidCredentials возвращается, если сервер отверг учётные данные
	ErrInvalidCredentials = errors.New("database.provider: invalid credentials")

	// ErrNotConnected возвращается при обращении к неподключенному провайдеру
	ErrNotConnected = errors.New("database.provider: not connected")
)

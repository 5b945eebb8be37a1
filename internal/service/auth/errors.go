package auth

import "errors"

var (
	// ErrInvalidInput возвращается, если не заполнены обязательные поля
	ErrInvalidInput = errors.New("auth.service: required fields are empty")

	// ErrInvalidCredentials возвращается, если логин или пароль не подошли
	ErrInvalidCredentials = errors.New("auth.service: invalid login or password")

	// ErrEmailTaken возвращается при регистрации на занятый email
	ErrEmailTaken = errors.New("auth.service: email already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)

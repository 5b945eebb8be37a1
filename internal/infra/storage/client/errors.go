package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrEmailTaken возвращается при регистрации на уже занятый email
	ErrEmailTaken = errors.New("client.repository: email already registered")

	ErrBuildQuery = errors.New("client.repository: failed to build query")
	ErrExecQuery  = errors.New("client.repository: failed to execute query")
	ErrScanRow    = errors.New("client.repository: failed to scan row")
)

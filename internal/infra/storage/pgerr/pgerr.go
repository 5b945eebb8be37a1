// Package pgerr распознает нарушения ограничений PostgreSQL в ошибках lib/pq
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE нарушений ограничений
const (
	CodeUniqueViolation     pq.ErrorCode = "23505"
	CodeForeignKeyViolation pq.ErrorCode = "23503"
	CodeCheckViolation      pq.ErrorCode = "23514"
)

// Constraint возвращает код и имя нарушенного ограничения, если ошибка пришла от сервера
func Constraint(err error) (pq.ErrorCode, string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return "", "", false
	}
	return pqErr.Code, pqErr.Constraint, true
}

// IsUniqueViolation нарушение уникальности; пустое имя ограничения подходит под любое
func IsUniqueViolation(err error, constraint string) bool {
	return is(err, CodeUniqueViolation, constraint)
}

// IsForeignKeyViolation нарушение внешнего ключа; пустое имя ограничения подходит под любое
func IsForeignKeyViolation(err error, constraint string) bool {
	return is(err, CodeForeignKeyViolation, constraint)
}

// IsCheckViolation нарушение CHECK ограничения
func IsCheckViolation(err error, constraint string) bool {
	return is(err, CodeCheckViolation, constraint)
}

func is(err error, code pq.ErrorCode, constraint string) bool {
	c, name, ok := Constraint(err)
	if !ok || c != code {
		return false
	}
	return constraint == "" || name == constraint
}

package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert client: %w", &pq.Error{Code: "23505", Constraint: "clients_email_key"})

	assert.True(t, IsUniqueViolation(err, "clients_email_key"))
	assert.True(t, IsUniqueViolation(err, ""))
	assert.False(t, IsUniqueViolation(err, "managers_db_login_key"))
	assert.False(t, IsForeignKeyViolation(err, ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pq.Error{Code: "23503", Constraint: "bookings_tourid_fkey"}

	assert.True(t, IsForeignKeyViolation(err, "bookings_tourid_fkey"))
	assert.False(t, IsCheckViolation(err, ""))
}

func TestIsCheckViolation(t *testing.T) {
	err := &pq.Error{Code: "23514", Constraint: "reviews_rating_check"}
	assert.True(t, IsCheckViolation(err, "reviews_rating_check"))
}

func TestConstraint_NotPostgresError(t *testing.T) {
	_, _, ok := Constraint(errors.New("connection refused"))
	assert.False(t, ok)
	assert.False(t, IsUniqueViolation(errors.New("duplicate"), ""))
}

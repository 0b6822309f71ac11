package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"pet-owner-directory/internal/seed"
)

func TestMapPostgresError(t *testing.T) {
	assert.NoError(t, mapPostgresError(nil))

	plain := errors.New("plain")
	assert.Same(t, plain, mapPostgresError(plain))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Detail: "Key (owner_id)=(9) is not present"}
	err := mapPostgresError(fk)
	assert.ErrorIs(t, err, seed.ErrInvalidFixture)
	assert.Contains(t, err.Error(), "owner_id")

	conn := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
	err = mapPostgresError(conn)
	assert.ErrorIs(t, err, conn)
	assert.Contains(t, err.Error(), "connection")

	other := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.Same(t, error(other), mapPostgresError(other))
}

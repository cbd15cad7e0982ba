package postgres

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm translated", err: errors.Wrap(gorm.ErrDuplicatedKey, "create"), want: true},
		{name: "pg unique violation", err: errors.WithStack(&pgconn.PgError{Code: pgerrcode.UniqueViolation}), want: true},
		{name: "pg other code", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, isForeignKeyConstraintViolation(nil))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "name" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("boom")))
	assert.False(t, isNotNullConstraintViolation(nil))
}

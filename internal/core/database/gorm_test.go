package database

import (
	"errors"
	"fmt"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{"empty", "  ", "", "", ""},
		{"native dsn untouched", "root:pw@tcp(db:3306)/heroes?parseTime=true", "", "", "root:pw@tcp(db:3306)/heroes?parseTime=true"},
		{"url form", "mysql://root:pw@db:3306/heroes", "", "", "root:pw@tcp(db:3306)/heroes?charset=utf8mb4&parseTime=true"},
		{"jdbc with overrides", "jdbc:mysql://db:3306/heroes?useSSL=false&serverTimezone=UTC", "app", "secret", "app:secret@tcp(db:3306)/heroes?charset=utf8mb4&loc=UTC&parseTime=true&tls=false"},
		{"credentials from query", "mysql://db:3306/heroes?user=u&password=p&characterEncoding=utf8", "", "", "u:p@tcp(db:3306)/heroes?charset=utf8&parseTime=true"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "root:****@tcp(db:3306)/heroes", maskDSN("root:pw@tcp(db:3306)/heroes"))
	assert.Equal(t, "tcp(db:3306)/heroes", maskDSN("tcp(db:3306)/heroes"))
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(fmt.Errorf("save: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsDuplicateKey(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsDuplicateKey(&mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.False(t, IsDuplicateKey(&mysqldrv.MySQLError{Number: 1045}))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: heroes.name")))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	db, err := NewGorm(Opts{Driver: "oracle"})
	require.Error(t, err)
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestWithPGCredentials(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{"no user configured", "host=db dbname=heroes", "", "", "host=db dbname=heroes"},
		{"key value", "host=db dbname=heroes", "app", "pw", "host=db dbname=heroes user=app password=pw"},
		{"key value keeps own user", "host=db user=owner", "app", "pw", "host=db user=owner"},
		{"url", "postgres://db:5432/heroes?sslmode=disable", "app", "pw", "postgres://app:pw@db:5432/heroes?sslmode=disable"},
		{"url keeps own user", "postgres://owner@db/heroes", "app", "pw", "postgres://owner@db/heroes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, withPGCredentials(tc.in, tc.user, tc.pass))
		})
	}
}

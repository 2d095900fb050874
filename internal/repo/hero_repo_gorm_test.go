package repo

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"superheroes/internal/domain"
)

var heroColumns = []string{"id", "name", "alias", "universe", "power_level", "active", "created_at", "updated_at"}

func newMockRepo(t *testing.T, now time.Time) (*HeroRepo, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewHeroRepo(db).WithClock(func() time.Time { return now }), mock
}

func TestHeroRepo_FindByID(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo, mock := newMockRepo(t, ts)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "heroes" WHERE "heroes"."id" = \$1`).
			WillReturnRows(sqlmock.NewRows(heroColumns).
				AddRow(5, "Flash", nil, "DC", 80, false, ts, ts))

		h, err := repo.FindByID(ctx, 5)
		require.NoError(t, err)
		require.NotNil(t, h)
		assert.Equal(t, uint64(5), h.ID)
		assert.Equal(t, "Flash", h.Name)
		assert.Nil(t, h.Alias)
		assert.Equal(t, domain.UniverseDC, h.Universe)
		assert.False(t, h.Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "heroes" WHERE "heroes"."id" = \$1`).
			WillReturnRows(sqlmock.NewRows(heroColumns))

		h, err := repo.FindByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, h)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "heroes"`).WillReturnError(errors.New("conn reset"))

		h, err := repo.FindByID(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, h)
		assert.Equal(t, domain.KindUnexpected, domain.KindOf(err))
	})
}

func TestHeroRepo_FindByNameIgnoreCase(t *testing.T) {
	ts := time.Now().UTC()
	repo, mock := newMockRepo(t, ts)

	mock.ExpectQuery(`SELECT \* FROM "heroes" WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WillReturnRows(sqlmock.NewRows(heroColumns).
			AddRow(1, "Superman", "Clark Kent", "DC", 95, true, ts, ts))

	h, err := repo.FindByNameIgnoreCase(context.Background(), "superman")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Superman", h.Name)
	require.NotNil(t, h.Alias)
	assert.Equal(t, "Clark Kent", *h.Alias)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_FindAll(t *testing.T) {
	ts := time.Now().UTC()
	repo, mock := newMockRepo(t, ts)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "heroes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT \* FROM "heroes" ORDER BY "name"`).
		WillReturnRows(sqlmock.NewRows(heroColumns).
			AddRow(1, "Aquaman", nil, "DC", 70, true, ts, ts).
			AddRow(2, "Batman", nil, "DC", 60, true, ts, ts))

	page, err := repo.FindAll(context.Background(), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, domain.DefaultPageSize, page.Size)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Aquaman", page.Items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_FindAll_SortDescAndOutOfRange(t *testing.T) {
	repo, mock := newMockRepo(t, time.Now())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "heroes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	// offset 30 >= total 3：不再发列表查询
	page, err := repo.FindAll(context.Background(), domain.PageRequest{
		Page: 3, Size: 10, Sort: []domain.SortOrder{{Field: "powerLevel", Desc: true}},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(3), page.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_FindAll_HugePageIsEmpty(t *testing.T) {
	repo, mock := newMockRepo(t, time.Now())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "heroes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	// page*size 溢出也不能回到第一页
	huge := math.MaxInt/10 + 1
	page, err := repo.FindAll(context.Background(), domain.PageRequest{Page: huge, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, huge, page.Page)
	assert.Equal(t, int64(2), page.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_FindAll_UnknownSortField(t *testing.T) {
	repo, mock := newMockRepo(t, time.Now())

	_, err := repo.FindAll(context.Background(), domain.PageRequest{
		Sort: []domain.SortOrder{{Field: "secretIdentity"}},
	})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "secretIdentity")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_SearchByName(t *testing.T) {
	ts := time.Now().UTC()
	repo, mock := newMockRepo(t, ts)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "heroes" WHERE LOWER\(name\) LIKE \$1`).
		WithArgs(`%man\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "heroes" WHERE LOWER\(name\) LIKE \$1 ORDER BY "power_level" DESC`).
		WillReturnRows(sqlmock.NewRows(heroColumns).
			AddRow(3, "Man_Bat", nil, "DC", 40, true, ts, ts))

	page, err := repo.SearchByName(context.Background(), "MAN_", domain.PageRequest{
		Size: 5, Sort: []domain.SortOrder{{Field: "powerLevel", Desc: true}},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Man_Bat", page.Items[0].Name)
	assert.Equal(t, 5, page.Size)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_Save_Insert(t *testing.T) {
	ts := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	repo, mock := newMockRepo(t, ts)

	mock.ExpectQuery(`INSERT INTO "heroes"`).
		WithArgs("Superman", nil, "DC", 95, true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	h := &domain.Hero{Name: "Superman", Universe: domain.UniverseDC, PowerLevel: 95, Active: true}
	require.NoError(t, repo.Save(context.Background(), h))
	assert.Equal(t, uint64(7), h.ID)
	assert.Equal(t, ts, h.CreatedAt)
	assert.Equal(t, ts, h.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_Save_UpdateKeepsCreatedAt(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	repo, mock := newMockRepo(t, now)

	mock.ExpectExec(`UPDATE "heroes" SET "name"=\$1,"alias"=\$2,"universe"=\$3,"power_level"=\$4,"active"=\$5,"updated_at"=\$6 WHERE .*id" = \$7`).
		WithArgs("Flash", nil, "DC", 80, false, sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	h := &domain.Hero{ID: 5, Name: "Flash", Universe: domain.UniverseDC, PowerLevel: 80, Active: false,
		CreatedAt: created, UpdatedAt: created}
	require.NoError(t, repo.Save(context.Background(), h))
	assert.Equal(t, created, h.CreatedAt)
	assert.Equal(t, now, h.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_Save_UpdatedAtStrictlyIncreases(t *testing.T) {
	stored := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// 时钟回拨/同一时刻也要保证 updated_at 前进
	repo, mock := newMockRepo(t, stored)

	mock.ExpectExec(`UPDATE "heroes"`).WillReturnResult(sqlmock.NewResult(0, 1))

	h := &domain.Hero{ID: 1, Name: "Storm", Universe: domain.UniverseMarvel, PowerLevel: 85,
		CreatedAt: stored, UpdatedAt: stored}
	require.NoError(t, repo.Save(context.Background(), h))
	assert.Equal(t, stored.Add(time.Millisecond), h.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_Save_UpdatedAtMillisecondPrecision(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := base.Add(300 * time.Microsecond)
	// 同一毫秒内的第二次写：datetime(3) 下也必须比上次大
	repo, mock := newMockRepo(t, base.Add(700*time.Microsecond))

	mock.ExpectExec(`UPDATE "heroes"`).WillReturnResult(sqlmock.NewResult(0, 1))

	h := &domain.Hero{ID: 1, Name: "Storm", Universe: domain.UniverseMarvel, PowerLevel: 85,
		CreatedAt: stored, UpdatedAt: stored}
	require.NoError(t, repo.Save(context.Background(), h))
	assert.Equal(t, base.Add(time.Millisecond), h.UpdatedAt)
	assert.Equal(t, h.UpdatedAt, h.UpdatedAt.Truncate(time.Millisecond))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_Save_UpdateMissingRowIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t, time.Now())

	// 读到之后、写之前被删掉
	mock.ExpectExec(`UPDATE "heroes"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &domain.Hero{ID: 9, Name: "Storm", Universe: domain.UniverseMarvel, PowerLevel: 85})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "Hero with id 9 not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_Save_DuplicateKey(t *testing.T) {
	repo, mock := newMockRepo(t, time.Now())

	mock.ExpectQuery(`INSERT INTO "heroes"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uk_hero_name"})

	err := repo.Save(context.Background(), &domain.Hero{Name: "Superman", Universe: domain.UniverseDC, PowerLevel: 95})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepo_Delete(t *testing.T) {
	repo, mock := newMockRepo(t, time.Now())

	mock.ExpectExec(`DELETE FROM "heroes" WHERE .*id" = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), &domain.Hero{ID: 5}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

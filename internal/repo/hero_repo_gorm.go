package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"superheroes/internal/core/database"
	"superheroes/internal/domain"
)

// 可排序字段：API 字段名 -> 列名
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"alias":      "alias",
	"universe":   "universe",
	"powerLevel": "power_level",
	"active":     "active",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type HeroRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewHeroRepo(db *gorm.DB) *HeroRepo { return &HeroRepo{db: db, now: time.Now} }

// WithClock 替换时间源（测试用）
func (r *HeroRepo) WithClock(now func() time.Time) *HeroRepo {
	r.now = now
	return r
}

// Migrate 建表；postgres 额外加 LOWER(name) 唯一索引，mysql 默认排序规则本身大小写不敏感
func (r *HeroRepo) Migrate(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	if err := db.AutoMigrate(&domain.Hero{}); err != nil {
		return fmt.Errorf("automigrate heroes: %w", err)
	}
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uk_hero_name_lower ON heroes (LOWER(name))`).Error; err != nil {
			return fmt.Errorf("create lower(name) index: %w", err)
		}
	}
	return nil
}

func (r *HeroRepo) FindByID(ctx context.Context, id uint64) (*domain.Hero, error) {
	var h domain.Hero
	err := r.db.WithContext(ctx).First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hero %d: %w", id, err)
	}
	return &h, nil
}

func (r *HeroRepo) FindByNameIgnoreCase(ctx context.Context, name string) (*domain.Hero, error) {
	var h domain.Hero
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hero by name: %w", err)
	}
	return &h, nil
}

func (r *HeroRepo) SearchByName(ctx context.Context, text string, p domain.PageRequest) (domain.Page[domain.Hero], error) {
	like := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
	return r.page(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("LOWER(name) LIKE ?", like)
	})
}

func (r *HeroRepo) FindAll(ctx context.Context, p domain.PageRequest) (domain.Page[domain.Hero], error) {
	return r.page(ctx, p, nil)
}

func (r *HeroRepo) page(ctx context.Context, p domain.PageRequest, scope func(*gorm.DB) *gorm.DB) (domain.Page[domain.Hero], error) {
	p = p.Normalize()
	orders := make([]clause.OrderByColumn, 0, len(p.Sort))
	for _, s := range p.Sort {
		col, ok := sortColumns[s.Field]
		if !ok {
			return domain.Page[domain.Hero]{}, domain.InvalidArgument(fmt.Sprintf("Unknown sort property '%s'", s.Field))
		}
		orders = append(orders, clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: s.Desc})
	}

	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Hero{})
		if scope != nil {
			q = scope(q)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return domain.Page[domain.Hero]{}, fmt.Errorf("count heroes: %w", err)
	}

	q := base()
	for _, o := range orders {
		q = q.Order(o)
	}
	items := make([]domain.Hero, 0, p.Size)
	if total > int64(p.Offset()) {
		if err := q.Limit(p.Size).Offset(p.Offset()).Find(&items).Error; err != nil {
			return domain.Page[domain.Hero]{}, fmt.Errorf("list heroes: %w", err)
		}
	}
	return domain.Page[domain.Hero]{Items: items, Total: total, Page: p.Page, Size: p.Size}, nil
}

// Save ID 为 0 时插入并回填 ID；否则更新除 id/created_at 以外的列，行已不存在时返回 NotFound。
// created_at 只在插入时写一次，updated_at 每次写都刷新且严格递增。
// 时间截到毫秒：MySQL 的 datetime(3) 只存到毫秒，递增要在落库后仍然成立。
func (r *HeroRepo) Save(ctx context.Context, h *domain.Hero) error {
	now := r.now().Truncate(time.Millisecond)
	if !now.After(h.UpdatedAt) {
		now = h.UpdatedAt.Truncate(time.Millisecond).Add(time.Millisecond)
	}
	h.UpdatedAt = now

	var err error
	if h.ID == 0 {
		h.CreatedAt = now
		err = r.db.WithContext(ctx).Create(h).Error
	} else {
		res := r.db.WithContext(ctx).Model(h).
			Select("name", "alias", "universe", "power_level", "active", "updated_at").
			Updates(h)
		err = res.Error
		if err == nil && res.RowsAffected == 0 {
			return domain.HeroNotFound(h.ID)
		}
	}
	if err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("save hero %q: %w", h.Name, domain.ErrDuplicateKey)
		}
		return fmt.Errorf("save hero: %w", err)
	}
	return nil
}

func (r *HeroRepo) Delete(ctx context.Context, h *domain.Hero) error {
	if err := r.db.WithContext(ctx).Delete(h).Error; err != nil {
		return fmt.Errorf("delete hero %d: %w", h.ID, err)
	}
	return nil
}

var _ domain.HeroRepository = (*HeroRepo)(nil)

package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"superheroes/internal/domain"
	"superheroes/internal/feature/hero"
)

const minSearchLen = 2

// HeroService 英雄业务：名称唯一性（忽略大小写）、输入规范化、不存在/冲突信号。
// 唯一性检查与写入不是原子操作；并发写同名时靠存储层唯一索引兜底，冲突同样报 AlreadyExists。
type HeroService struct {
	repo domain.HeroRepository
	log  *zap.Logger
}

func NewHeroService(repo domain.HeroRepository, log *zap.Logger) *HeroService {
	if log == nil {
		log = zap.NewNop()
	}
	return &HeroService{repo: repo, log: log}
}

func (s *HeroService) ListHeroes(ctx context.Context, p domain.PageRequest) (hero.PageResponse, error) {
	page, err := s.repo.FindAll(ctx, p)
	if err != nil {
		return hero.PageResponse{}, err
	}
	return hero.ToPageResponse(page), nil
}

func (s *HeroService) SearchHeroesByName(ctx context.Context, text string, p domain.PageRequest) (hero.PageResponse, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minSearchLen {
		return hero.PageResponse{}, domain.InvalidArgument("Parameter 'name' must have at least 2 non-blank characters")
	}
	page, err := s.repo.SearchByName(ctx, text, p)
	if err != nil {
		return hero.PageResponse{}, err
	}
	return hero.ToPageResponse(page), nil
}

func (s *HeroService) GetHeroByID(ctx context.Context, id uint64) (hero.Response, error) {
	h, err := s.mustFind(ctx, id)
	if err != nil {
		return hero.Response{}, err
	}
	return hero.ToResponse(h), nil
}

func (s *HeroService) CreateHero(ctx context.Context, req *hero.Request) (hero.Response, error) {
	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, name); err != nil {
		return hero.Response{}, err
	}

	h := hero.ToEntity(req)
	if err := s.repo.Save(ctx, h); err != nil {
		return hero.Response{}, s.saveErr(name, err)
	}
	s.log.Info("hero created", zap.Uint64("id", h.ID), zap.String("name", h.Name))
	return hero.ToResponse(h), nil
}

func (s *HeroService) UpdateHero(ctx context.Context, id uint64, req *hero.Request) (hero.Response, error) {
	h, err := s.mustFind(ctx, id)
	if err != nil {
		return hero.Response{}, err
	}

	name := strings.TrimSpace(req.Name)
	if !strings.EqualFold(name, h.Name) {
		if err := s.ensureNameFree(ctx, name); err != nil {
			return hero.Response{}, err
		}
	}

	hero.ApplyToEntity(req, h)
	if err := s.repo.Save(ctx, h); err != nil {
		return hero.Response{}, s.saveErr(name, err)
	}
	s.log.Info("hero updated", zap.Uint64("id", h.ID), zap.String("name", h.Name))
	return hero.ToResponse(h), nil
}

func (s *HeroService) DeleteHero(ctx context.Context, id uint64) error {
	h, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, h); err != nil {
		return err
	}
	s.log.Info("hero deleted", zap.Uint64("id", id))
	return nil
}

func (s *HeroService) mustFind(ctx context.Context, id uint64) (*domain.Hero, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.HeroNotFound(id)
	}
	return h, nil
}

func (s *HeroService) ensureNameFree(ctx context.Context, name string) error {
	existing, err := s.repo.FindByNameIgnoreCase(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.HeroAlreadyExists(name, nil)
	}
	return nil
}

// saveErr 检查通过后仍撞上唯一索引，说明有并发写入同名
func (s *HeroService) saveErr(name string, err error) error {
	if errors.Is(err, domain.ErrDuplicateKey) {
		s.log.Warn("hero name taken concurrently", zap.String("name", name))
		return domain.HeroAlreadyExists(name, err)
	}
	return err
}

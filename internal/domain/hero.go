package domain

import (
	"context"
	"time"
)

// Universe 英雄所属宇宙（封闭集合）
type Universe string

const (
	UniverseMarvel    Universe = "MARVEL"
	UniverseDC        Universe = "DC"
	UniverseImage     Universe = "IMAGE"
	UniverseDarkHorse Universe = "DARK_HORSE"
	UniverseOther     Universe = "OTHER"
)

var universes = []Universe{UniverseMarvel, UniverseDC, UniverseImage, UniverseDarkHorse, UniverseOther}

func Universes() []Universe { return append([]Universe(nil), universes...) }

func (u Universe) Valid() bool {
	for _, v := range universes {
		if u == v {
			return true
		}
	}
	return false
}

type Hero struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"size:100;not null;uniqueIndex:uk_hero_name" json:"name"`
	Alias      *string   `gorm:"size:100" json:"alias"`
	Universe   Universe  `gorm:"size:16;not null" json:"universe"`
	PowerLevel int       `gorm:"not null" json:"powerLevel"`
	Active     bool      `gorm:"not null" json:"active"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

func (Hero) TableName() string { return "heroes" }

type HeroRepository interface {
	FindByID(ctx context.Context, id uint64) (*Hero, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*Hero, error)
	SearchByName(ctx context.Context, text string, p PageRequest) (Page[Hero], error)
	FindAll(ctx context.Context, p PageRequest) (Page[Hero], error)
	Save(ctx context.Context, h *Hero) error
	Delete(ctx context.Context, h *Hero) error
}

package hero

import (
	"time"

	"superheroes/internal/domain"
)

// Request 创建与更新共用
type Request struct {
	Name       string          `json:"name" binding:"required,notblank,min=2,max=100" example:"Superman"`
	Alias      *string         `json:"alias" binding:"omitempty,max=100" example:"Clark Kent"`
	Universe   domain.Universe `json:"universe" binding:"required,universe" example:"DC" enums:"MARVEL,DC,IMAGE,DARK_HORSE,OTHER"`
	PowerLevel *int            `json:"powerLevel" binding:"required,min=1,max=100" example:"95"`
	Active     *bool           `json:"active" example:"true"`
}

type Response struct {
	ID         uint64          `json:"id" example:"1"`
	Name       string          `json:"name" example:"Superman"`
	Alias      *string         `json:"alias" example:"Clark Kent"`
	Universe   domain.Universe `json:"universe" example:"DC"`
	PowerLevel int             `json:"powerLevel" example:"95"`
	Active     bool            `json:"active" example:"true"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type PageResponse struct {
	Items      []Response `json:"items"`
	Total      int64      `json:"total" example:"42"`
	Page       int        `json:"page" example:"0"`
	Size       int        `json:"size" example:"10"`
	TotalPages int        `json:"totalPages" example:"5"`
}

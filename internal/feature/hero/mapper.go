package hero

import (
	"strings"

	"superheroes/internal/domain"
)

// ToEntity 新建实体：name 去首尾空格，active 缺省为 true；id 与时间戳由持久层填写
func ToEntity(req *Request) *domain.Hero {
	h := &domain.Hero{Active: true}
	ApplyToEntity(req, h)
	return h
}

// ApplyToEntity 原地覆盖；只有请求显式携带 active 时才覆盖
func ApplyToEntity(req *Request, h *domain.Hero) {
	h.Name = strings.TrimSpace(req.Name)
	h.Alias = req.Alias
	h.Universe = req.Universe
	if req.PowerLevel != nil {
		h.PowerLevel = *req.PowerLevel
	}
	if req.Active != nil {
		h.Active = *req.Active
	}
}

func ToResponse(h *domain.Hero) Response {
	return Response{
		ID:         h.ID,
		Name:       h.Name,
		Alias:      h.Alias,
		Universe:   h.Universe,
		PowerLevel: h.PowerLevel,
		Active:     h.Active,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

func ToPageResponse(p domain.Page[domain.Hero]) PageResponse {
	mapped := domain.MapPage(p, ToResponse)
	return PageResponse{
		Items:      mapped.Items,
		Total:      mapped.Total,
		Page:       mapped.Page,
		Size:       mapped.Size,
		TotalPages: p.TotalPages(),
	}
}

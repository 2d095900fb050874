package domain

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "name"
)

type SortOrder struct {
	Field string
	Desc  bool
}

// PageRequest 分页 + 排序参数，Page 从 0 开始
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Normalize 负页码归零，非法 size 回落默认值，超上限截断，未指定排序时按 name 升序
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if len(p.Sort) == 0 {
		p.Sort = []SortOrder{{Field: DefaultSortBy}}
	}
	return p
}

// Offset 超大页码相乘溢出时饱和到 math.MaxInt
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// MapPage 转换页内元素，保留分页元数据
func MapPage[T, R any](p Page[T], fn func(*T) R) Page[R] {
	out := Page[R]{Items: make([]R, 0, len(p.Items)), Total: p.Total, Page: p.Page, Size: p.Size}
	for i := range p.Items {
		out.Items = append(out.Items, fn(&p.Items[i]))
	}
	return out
}

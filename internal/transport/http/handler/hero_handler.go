package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"superheroes/internal/domain"
	"superheroes/internal/feature/hero"
	httpez "superheroes/internal/transport/http/ez"
)

// HeroService 处理器依赖的业务接口
type HeroService interface {
	ListHeroes(ctx context.Context, p domain.PageRequest) (hero.PageResponse, error)
	SearchHeroesByName(ctx context.Context, text string, p domain.PageRequest) (hero.PageResponse, error)
	GetHeroByID(ctx context.Context, id uint64) (hero.Response, error)
	CreateHero(ctx context.Context, req *hero.Request) (hero.Response, error)
	UpdateHero(ctx context.Context, id uint64, req *hero.Request) (hero.Response, error)
	DeleteHero(ctx context.Context, id uint64) error
}

type HeroHandler struct {
	svc         HeroService
	writeGuards []gin.HandlerFunc
}

// NewHeroHandler writeGuards 只挂在 POST/PUT/DELETE 上
func NewHeroHandler(svc HeroService, writeGuards ...gin.HandlerFunc) *HeroHandler {
	return &HeroHandler{svc: svc, writeGuards: writeGuards}
}

type pageQuery struct {
	Page *int     `form:"page"`
	Size *int     `form:"size"`
	Sort []string `form:"sort"`
}

type searchQuery struct {
	pageQuery
	Name string `form:"name"`
}

// MountAPI 挂到 /api/v1 下
func (h *HeroHandler) MountAPI(api *gin.RouterGroup) {
	ez := httpez.New(api)

	httpez.RegisterAction(ez, httpez.Action[pageQuery, hero.PageResponse]{
		Method:  http.MethodGet,
		Path:    "/heroes",
		Binder:  httpez.BindQuery,
		Handler: h.list,
	})
	httpez.RegisterAction(ez, httpez.Action[searchQuery, hero.PageResponse]{
		Method:  http.MethodGet,
		Path:    "/heroes/search",
		Binder:  httpez.BindQuery,
		Handler: h.search,
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, hero.Response]{
		Method:  http.MethodGet,
		Path:    "/heroes/:id",
		Binder:  httpez.BindNone,
		Handler: h.get,
	})
	httpez.RegisterAction(ez, httpez.Action[hero.Request, hero.Response]{
		Method:     http.MethodPost,
		Path:       "/heroes",
		Binder:     httpez.BindJSON,
		Status:     http.StatusCreated,
		Location:   heroLocation,
		Middleware: h.writeGuards,
		Handler:    h.create,
	})
	httpez.RegisterAction(ez, httpez.Action[hero.Request, hero.Response]{
		Method:     http.MethodPut,
		Path:       "/heroes/:id",
		Binder:     httpez.BindJSON,
		Middleware: h.writeGuards,
		Handler:    h.update,
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, struct{}]{
		Method:     http.MethodDelete,
		Path:       "/heroes/:id",
		Binder:     httpez.BindNone,
		Status:     http.StatusNoContent,
		Middleware: h.writeGuards,
		Handler:    h.delete,
	})
}

// list godoc
// @Summary      List heroes
// @Description  Paged list of heroes. Default page=0, size=10, sort=name,asc.
// @Tags         heroes
// @Produce      json
// @Param        page  query  int     false  "page index (0-based)"  default(0)  minimum(0)
// @Param        size  query  int     false  "page size"  default(10)  minimum(1)  maximum(100)
// @Param        sort  query  string  false  "field[,asc|desc], repeatable"  default(name,asc)
// @Success      200  {object}  hero.PageResponse
// @Failure      400  {object}  response.APIError
// @Router       /heroes [get]
func (h *HeroHandler) list(c *gin.Context, in *pageQuery) (hero.PageResponse, error) {
	p, err := in.toPageRequest()
	if err != nil {
		return hero.PageResponse{}, err
	}
	return h.svc.ListHeroes(c.Request.Context(), p)
}

// search godoc
// @Summary      Search heroes by name
// @Description  Case-insensitive substring match on name. The trimmed text needs at least 2 characters.
// @Tags         heroes
// @Produce      json
// @Param        name  query  string  true   "text contained in the hero name"  example(man)
// @Param        page  query  int     false  "page index (0-based)"  default(0)
// @Param        size  query  int     false  "page size"  default(10)
// @Param        sort  query  string  false  "field[,asc|desc], repeatable"  default(name,asc)
// @Success      200  {object}  hero.PageResponse
// @Failure      400  {object}  response.APIError
// @Router       /heroes/search [get]
func (h *HeroHandler) search(c *gin.Context, in *searchQuery) (hero.PageResponse, error) {
	p, err := in.toPageRequest()
	if err != nil {
		return hero.PageResponse{}, err
	}
	return h.svc.SearchHeroesByName(c.Request.Context(), in.Name, p)
}

// get godoc
// @Summary      Get a hero
// @Tags         heroes
// @Produce      json
// @Param        id   path      int  true  "hero id"  example(1)
// @Success      200  {object}  hero.Response
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /heroes/{id} [get]
func (h *HeroHandler) get(c *gin.Context, _ *struct{}) (hero.Response, error) {
	id, err := pathID(c)
	if err != nil {
		return hero.Response{}, err
	}
	return h.svc.GetHeroByID(c.Request.Context(), id)
}

// create godoc
// @Summary      Create a hero
// @Description  The name is trimmed and must be unique ignoring case. active defaults to true.
// @Tags         heroes
// @Accept       json
// @Produce      json
// @Param        hero  body      hero.Request  true  "hero to create"
// @Success      201   {object}  hero.Response
// @Header       201   {string}  Location  "/api/v1/heroes/{id}"
// @Failure      400   {object}  response.APIError
// @Failure      409   {object}  response.APIError
// @Security     BearerAuth
// @Router       /heroes [post]
func (h *HeroHandler) create(c *gin.Context, in *hero.Request) (hero.Response, error) {
	return h.svc.CreateHero(c.Request.Context(), in)
}

// update godoc
// @Summary      Update a hero
// @Description  Overwrites all fields; active is only changed when present in the body.
// @Tags         heroes
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "hero id"
// @Param        hero  body      hero.Request  true  "new values"
// @Success      200   {object}  hero.Response
// @Failure      400   {object}  response.APIError
// @Failure      404   {object}  response.APIError
// @Failure      409   {object}  response.APIError
// @Security     BearerAuth
// @Router       /heroes/{id} [put]
func (h *HeroHandler) update(c *gin.Context, in *hero.Request) (hero.Response, error) {
	id, err := pathID(c)
	if err != nil {
		return hero.Response{}, err
	}
	return h.svc.UpdateHero(c.Request.Context(), id, in)
}

// delete godoc
// @Summary      Delete a hero
// @Tags         heroes
// @Param        id  path  int  true  "hero id"
// @Success      204
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Security     BearerAuth
// @Router       /heroes/{id} [delete]
func (h *HeroHandler) delete(c *gin.Context, _ *struct{}) (struct{}, error) {
	id, err := pathID(c)
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.svc.DeleteHero(c.Request.Context(), id)
}

func heroLocation(c *gin.Context, out hero.Response) string {
	return strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + strconv.FormatUint(out.ID, 10)
}

func pathID(c *gin.Context) (uint64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.InvalidArgument(fmt.Sprintf("invalid hero id '%s'", raw))
	}
	return id, nil
}

// toPageRequest 解析 page/size/sort；sort 形如 "name" / "name,desc"
func (q *pageQuery) toPageRequest() (domain.PageRequest, error) {
	var p domain.PageRequest
	if q.Page != nil {
		p.Page = *q.Page
	}
	if q.Size != nil {
		p.Size = *q.Size
	}
	for _, raw := range q.Sort {
		parts := strings.Split(raw, ",")
		field := strings.TrimSpace(parts[0])
		if field == "" {
			continue
		}
		order := domain.SortOrder{Field: field}
		if len(parts) > 1 {
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "", "asc":
			case "desc":
				order.Desc = true
			default:
				return domain.PageRequest{}, domain.InvalidArgument(fmt.Sprintf("invalid sort direction '%s'", parts[1]))
			}
		}
		p.Sort = append(p.Sort, order)
	}
	return p.Normalize(), nil
}

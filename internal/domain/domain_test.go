package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(HeroNotFound(999)))
	assert.Equal(t, KindAlreadyExists, KindOf(fmt.Errorf("wrap: %w", HeroAlreadyExists("Superman", nil))))
	assert.Equal(t, KindInvalidArgument, KindOf(InvalidArgument("bad")))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("boom")))

	assert.Contains(t, HeroNotFound(999).Error(), "999")
	assert.Contains(t, HeroAlreadyExists("Superman", nil).Error(), "Superman")
}

func TestHeroAlreadyExists_UnwrapsCause(t *testing.T) {
	err := HeroAlreadyExists("Batman", ErrDuplicateKey)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.True(t, IsAlreadyExists(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsInvalidArgument(nil))
}

func TestUniverseValid(t *testing.T) {
	for _, u := range Universes() {
		assert.True(t, u.Valid(), u)
	}
	assert.False(t, Universe("dc").Valid())
	assert.False(t, Universe("").Valid())
}

func TestPageRequestNormalize(t *testing.T) {
	p := PageRequest{Page: -3, Size: 0}.Normalize()
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Equal(t, []SortOrder{{Field: "name"}}, p.Sort)

	p = PageRequest{Page: 2, Size: 500, Sort: []SortOrder{{Field: "powerLevel", Desc: true}}}.Normalize()
	assert.Equal(t, MaxPageSize, p.Size)
	assert.Equal(t, 200, p.Offset())
	assert.Equal(t, "powerLevel", p.Sort[0].Field)
}

func TestPageRequestOffsetSaturates(t *testing.T) {
	assert.Equal(t, 0, PageRequest{}.Offset())
	assert.Equal(t, 30, PageRequest{Page: 3, Size: 10}.Offset())
	assert.Equal(t, math.MaxInt, PageRequest{Page: math.MaxInt/10 + 1, Size: 10}.Offset())
	assert.Equal(t, math.MaxInt, PageRequest{Page: math.MaxInt, Size: MaxPageSize}.Offset())
}

func TestPageTotalPagesAndMap(t *testing.T) {
	p := Page[int]{Items: []int{1, 2, 3}, Total: 21, Page: 0, Size: 10}
	assert.Equal(t, 3, p.TotalPages())
	assert.Equal(t, 0, Page[int]{}.TotalPages())

	doubled := MapPage(p, func(v *int) int { return *v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled.Items)
	assert.Equal(t, int64(21), doubled.Total)
	assert.Equal(t, 10, doubled.Size)
}

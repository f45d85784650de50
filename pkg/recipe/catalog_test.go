package recipe

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/power"
	"github.com/gtnh/gtpower/pkg/tier"
)

func smallCatalog(t *testing.T) *Catalog {
	t.Helper()
	tbl, err := tier.NewTable([]int64{32, 128, 512, 2048})
	require.NoError(t, err)
	return NewCatalog(power.NewModel(tbl))
}

func simple(category string, eut, duration int64) *Builder {
	return NewBuilder().
		Category(category).
		FluidInputs(Fluid("Water", 1000)).
		FluidOutputs(Fluid("DistilledWater", 1000)).
		EUt(eut).
		Duration(duration)
}

func TestCatalog_EndToEnd(t *testing.T) {
	c := smallCatalog(t)

	h, err := c.RegisterBuilder(simple("distillery", 480, 100))
	require.NoError(t, err)

	d, err := c.Get(h)
	require.NoError(t, err)
	assert.Equal(t, tier.Tier(2), d.Power().Tier)

	assert.Empty(t, slices.Collect(c.FindByTierCeiling(1)))
	assert.Equal(t, []*Definition{d}, slices.Collect(c.FindByTierCeiling(2)))
	assert.Equal(t, []*Definition{d}, slices.Collect(c.FindByTierCeiling(3)))
}

func TestCatalog_RegistrationOrder(t *testing.T) {
	c := smallCatalog(t)

	var want []*Definition
	for i, eut := range []int64{500, 30, 2000, 100, 7} {
		h, err := c.RegisterBuilder(simple("mixer", eut, int64(20+i)))
		require.NoError(t, err)
		assert.Equal(t, i, h.Index)
		d, err := c.Get(h)
		require.NoError(t, err)
		want = append(want, d)
	}

	assert.Equal(t, want, slices.Collect(c.FindByTierCeiling(3)))
	assert.Equal(t, []*Definition{want[1], want[3], want[4]}, slices.Collect(c.FindByTierCeiling(1)))

	seq := c.FindByTierCeiling(3)
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq), "sequence must be restartable")

	var first *Definition
	for d := range seq {
		first = d
		break
	}
	assert.Same(t, want[0], first)
}

func TestCatalog_FailedRegistrationIsAtomic(t *testing.T) {
	c := smallCatalog(t)
	_, err := c.RegisterBuilder(simple("mixer", 30, 20))
	require.NoError(t, err)

	_, err = c.RegisterBuilder(simple("mixer", 480, -1))
	require.Error(t, err)
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidRecipeCost))
	assert.Equal(t, 1, c.Len())
	assert.Len(t, slices.Collect(c.FindByTierCeiling(3)), 1)

	_, err = c.RegisterBuilder(grade1Builder().Metadata(KeyBaseChance, 1.0))
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeDuplicateMetadataKey))
	assert.Equal(t, 1, c.Len())

	_, err = c.Register(nil)
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidRequest))
	_, err = c.RegisterBuilder(nil)
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidRequest))
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_FindByOutputChance(t *testing.T) {
	c := NewCatalog(nil)
	h, err := c.RegisterBuilder(grade1Builder())
	require.NoError(t, err)
	d, err := c.Get(h)
	require.NoError(t, err)

	assert.Equal(t, []OutputChance{
		{OutputIndex: 0, ChancePerMille: 1000},
		{OutputIndex: 1, ChancePerMille: 500},
		{OutputIndex: 2, ChancePerMille: 100},
	}, c.FindByOutputChance(d))
	assert.Nil(t, c.FindByOutputChance(nil))
}

func TestCatalog_Get(t *testing.T) {
	c := smallCatalog(t)
	h, err := c.RegisterBuilder(simple("mixer", 30, 20))
	require.NoError(t, err)

	_, err = c.Get(Handle{Index: 5, ID: h.ID})
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeNotFound))

	other := h
	other.ID[0] ^= 0xff
	_, err = c.Get(other)
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeNotFound))

	d, err := c.Get(h)
	require.NoError(t, err)
	got, ok := c.HandleOf(d)
	require.True(t, ok)
	assert.Equal(t, h, got)
}

func TestCatalog_CategoriesAndAll(t *testing.T) {
	c := smallCatalog(t)
	for _, cat := range []string{"mixer", "assembler", "mixer"} {
		_, err := c.RegisterBuilder(simple(cat, 30, 20).IgnoreCollision())
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"assembler", "mixer"}, c.Categories())
	assert.Len(t, slices.Collect(c.FindByCategory("mixer")), 2)
	assert.Empty(t, slices.Collect(c.FindByCategory("lathe")))

	var indexes []int
	for h := range c.All() {
		indexes = append(indexes, h.Index)
	}
	assert.Equal(t, []int{0, 1, 2}, indexes)
}

func TestCatalog_CollisionStillRegisters(t *testing.T) {
	c := smallCatalog(t)
	_, err := c.RegisterBuilder(simple("mixer", 30, 20))
	require.NoError(t, err)
	_, err = c.RegisterBuilder(simple("mixer", 120, 40))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestCatalog_ConcurrentReads(t *testing.T) {
	c := smallCatalog(t)
	for i := range 50 {
		_, err := c.RegisterBuilder(simple("mixer", int64(i*40), 20).IgnoreCollision())
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	counts := make([]int, 8)
	for g := range counts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range c.FindByTierCeiling(2) {
				counts[g]++
			}
		}()
	}
	wg.Wait()

	for _, n := range counts {
		assert.Equal(t, counts[0], n)
	}
	assert.Equal(t, 13, counts[0])
}

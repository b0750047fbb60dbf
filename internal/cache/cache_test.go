package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

func TestCacheEvictsOldestInserted(t *testing.T) {
	t.Parallel()

	const n = 5
	c := New[int](n)
	for i := 0; i <= n; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
	}

	assert.Equal(t, n, c.Len())
	_, ok := c.Get("k0")
	assert.False(t, ok, "first inserted key is evicted")
	for i := 1; i <= n; i++ {
		v, ok := c.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestCacheIsFIFONotLRU(t *testing.T) {
	t.Parallel()

	c := New[string](2)
	c.Put("a", "1")
	c.Put("b", "2")

	_, _ = c.Get("a")
	c.Put("a", "updated")
	c.Put("c", "3")

	_, ok := c.Get("a")
	assert.False(t, ok, "reads and re-puts do not refresh insertion order")
	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestCacheRePutReplacesValue(t *testing.T) {
	t.Parallel()

	c := New[string](3)
	c.Put("a", "1")
	c.Put("a", "2")

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, 1, c.Len())
}

func TestCacheClearAndCapacity(t *testing.T) {
	t.Parallel()

	c := New[int](0)
	assert.Equal(t, DefaultCapacity, c.Capacity())
	assert.Equal(t, DefaultCapacity, New[int](-3).Capacity())

	c.Put("a", 1)
	c.Put("b", 2)
	c.Clear()
	assert.Zero(t, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("c", 3)
	assert.Equal(t, 1, c.Len())
}

func TestCacheConcurrentPuts(t *testing.T) {
	t.Parallel()

	c := New[int](10)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Put(fmt.Sprintf("k%d", i), i)
			c.Get("k0")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, c.Len())
}

func TestKeyStability(t *testing.T) {
	t.Parallel()

	base := KeyParts{
		Kind:    variant.KindButton,
		Design:  theme.DesignFlat,
		Backend: "web",
	}
	explicit := base
	explicit.Options = variant.Options{
		Size:            variant.SizeMedium,
		Era:             variant.EraEighties,
		Intensity:       variant.IntensityMedium,
		Blur:            variant.BlurMedium,
		CornerRadius:    variant.CornerSoft,
		BorderThickness: variant.BorderMedium,
		ShadowStyle:     variant.ShadowHard,
	}

	assert.Equal(t, Key(base), Key(base))
	assert.Equal(t, Key(base), Key(explicit), "defaults and explicit defaults share a key")

	clamped := base
	clamped.Options.Intensity = variant.Intensity(40)
	strong := base
	strong.Options.Intensity = variant.IntensityStrong
	assert.Equal(t, Key(strong), Key(clamped))
}

func TestKeyDistinguishesInputs(t *testing.T) {
	t.Parallel()

	base := KeyParts{Kind: variant.KindCard, Design: theme.DesignNeumorphic, Backend: "web"}
	variations := []func(*KeyParts){
		func(p *KeyParts) { p.Kind = variant.KindModal },
		func(p *KeyParts) { p.Design = theme.DesignRetro },
		func(p *KeyParts) { p.State.Pressed = true },
		func(p *KeyParts) { p.State.Selected = true },
		func(p *KeyParts) { p.Options.Variant = variant.VariantDanger },
		func(p *KeyParts) { p.Options.Size = variant.SizeLarge },
		func(p *KeyParts) { p.Options.BackgroundOverride = "#ffffff" },
		func(p *KeyParts) { p.Options.TextOverride = "#000000" },
		func(p *KeyParts) { p.Backend = "native" },
		func(p *KeyParts) { p.Options.Era = variant.EraY2K },
		func(p *KeyParts) { p.Options.Glow = true },
		func(p *KeyParts) { p.Options.Opacity = style.Float(0.5) },
	}

	seen := map[string]struct{}{Key(base): {}}
	for i, vary := range variations {
		p := base
		vary(&p)
		k := Key(p)
		_, dup := seen[k]
		assert.False(t, dup, "variation %d collides: %s", i, k)
		seen[k] = struct{}{}
	}
}

func TestKeyQuotesFreeText(t *testing.T) {
	t.Parallel()

	a := KeyParts{Options: variant.Options{BackgroundOverride: `red"|text="blue`}}
	b := KeyParts{Options: variant.Options{BackgroundOverride: "red", TextOverride: "blue"}}
	assert.NotEqual(t, Key(a), Key(b))
}

package engine

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/adapter"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

func newTestEngine(t *testing.T, capacity int) *Engine {
	t.Helper()
	return New(Options{
		Theme:         theme.Compose(theme.DesignNeumorphic, theme.ModeLight, nil),
		CacheCapacity: capacity,
		Registry:      variant.NewRegistry(logger.Nop()),
	})
}

func TestEngineCachesByKey(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 10)
	opts := variant.Options{BackgroundOverride: "#ffffff"}

	first := e.Resolve(variant.KindCard, variant.State{Pressed: true}, opts, adapter.Web)
	second := e.Resolve(variant.KindCard, variant.State{Pressed: true}, opts, adapter.Web)
	assert.True(t, style.Equal(first, second))

	stats := e.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 10, stats.Capacity)

	e.Render(variant.KindCard, variant.State{Pressed: true}, opts, adapter.Native)
	assert.Equal(t, 2, e.Stats().Size, "backend id is part of the key")
}

func TestEngineSeparatesCapabilitySetsSharingAnID(t *testing.T) {
	t.Parallel()

	e := New(Options{
		Theme:    theme.Compose(theme.DesignSkeuomorphic, theme.ModeLight, nil),
		Registry: variant.NewRegistry(logger.Nop()),
	})
	rich := adapter.Capabilities{Units: adapter.UnitsPx, SupportsGradient: true}
	plain := adapter.Capabilities{Units: adapter.UnitsUnitless}

	first := e.Render(variant.KindButton, variant.State{}, variant.Options{}, rich)
	second := e.Render(variant.KindButton, variant.State{}, variant.Options{}, plain)

	assert.Contains(t, first, adapter.PropBackgroundImage)
	assert.NotContains(t, second, adapter.PropBackgroundImage)
	assert.Equal(t, float64(8), second[adapter.PropPaddingTop])

	want := adapter.Adapt(e.Resolve(variant.KindButton, variant.State{}, variant.Options{}, plain), plain)
	assert.Equal(t, want, second)
	assert.Equal(t, 2, e.Stats().Size)

	renamed := plain
	renamed.ID = "kiosk"
	e.Render(variant.KindButton, variant.State{}, variant.Options{}, renamed)
	assert.Equal(t, 3, e.Stats().Size)
}

func TestEngineResultsMatchUncachedResolution(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	reg := variant.NewRegistry(logger.Nop())
	th := e.Theme()

	for round := 0; round < 2; round++ {
		for _, kind := range variant.Kinds() {
			for _, state := range []variant.State{{}, {Pressed: true}, {Disabled: true, Focused: true}} {
				want := reg.Resolve(th, kind, state, variant.Options{})
				got := e.Resolve(kind, state, variant.Options{}, adapter.Web)
				require.True(t, style.Equal(want, got), "%s %+v", kind, state)
				assert.Equal(t, adapter.Adapt(want, adapter.Web), e.Render(kind, state, variant.Options{}, adapter.Web))
			}
		}
	}
	assert.LessOrEqual(t, e.Stats().Size, 3)
}

func TestEngineSetThemeClearsCache(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 0)
	before := e.Render(variant.KindButton, variant.State{}, variant.Options{}, adapter.Web)
	require.Equal(t, 1, e.Stats().Size)

	e.SetTheme(theme.Compose(theme.DesignNeumorphic, theme.ModeDark, nil))
	assert.Zero(t, e.Stats().Size)

	after := e.Render(variant.KindButton, variant.State{}, variant.Options{}, adapter.Web)
	assert.NotEqual(t, before[adapter.PropBackgroundColor], after[adapter.PropBackgroundColor])

	e.Reset()
	assert.Zero(t, e.Stats().Size)
}

func TestEngineReturnsCopies(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 5)
	d := e.Resolve(variant.KindButton, variant.State{}, variant.Options{}, adapter.Web)
	require.NotEmpty(t, d.Shadows)
	d.Shadows[0].DX = 999
	d.BackgroundColor = "#000000"

	again := e.Resolve(variant.KindButton, variant.State{}, variant.Options{}, adapter.Web)
	assert.NotEqual(t, float64(999), again.Shadows[0].DX)
	assert.NotEqual(t, "#000000", again.BackgroundColor)

	ns := e.Render(variant.KindButton, variant.State{}, variant.Options{}, adapter.Web)
	ns[adapter.PropBackgroundColor] = "#000000"
	assert.NotEqual(t, "#000000", e.Render(variant.KindButton, variant.State{}, variant.Options{}, adapter.Web)[adapter.PropBackgroundColor])
}

func TestEngineFollowsManager(t *testing.T) {
	t.Parallel()

	m := theme.NewManager(theme.Default())
	e := newTestEngine(t, 5)
	e.Bind(m)
	assert.Equal(t, theme.DesignFlat, e.Theme().Design)

	e.Render(variant.KindChip, variant.State{}, variant.Options{}, adapter.Terminal)
	m.Switch(theme.DesignRetro, theme.ModeDark, nil)

	assert.Equal(t, theme.DesignRetro, e.Theme().Design)
	assert.Zero(t, e.Stats().Size)
}

func TestEngineLogsThemeChanges(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	e := New(Options{Logger: log, Registry: variant.NewRegistry(log)})
	assert.Equal(t, theme.DesignFlat, e.Theme().Design)
	assert.NotEmpty(t, e.Theme().Colors.Primary, "zero theme is composed")

	e.SetTheme(theme.Compose(theme.DesignGlassmorphic, theme.ModeDark, nil))
	assert.Contains(t, buf.String(), `"design":"glassmorphic"`)
}

func TestEngineConcurrentUse(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 4)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				e.SetTheme(theme.Compose(theme.DesignRetro, theme.ModeLight, nil))
				return
			}
			kind := variant.Kinds()[i%len(variant.Kinds())]
			e.Render(kind, variant.State{}, variant.Options{}, adapter.Native)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, e.Stats().Size, 4)
}

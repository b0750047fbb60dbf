package variant

import (
	"bytes"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)
	return NewRegistry(log), buf
}

func TestFlatPrimaryButton(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Default()

	d := reg.Resolve(th, KindButton, State{}, Options{})
	assert.Empty(t, d.Shadows)
	assert.Equal(t, th.Colors.Primary, d.BackgroundColor)
	assert.Equal(t, style.Num(0), d.BorderWidth)
	assert.Equal(t, th.Colors.OnPrimary, d.TextColor)
}

func TestFlatStates(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Default()

	disabled := reg.Resolve(th, KindButton, State{Disabled: true, Focused: true}, Options{})
	assert.Equal(t, th.Colors.Disabled, disabled.BackgroundColor)
	assert.Equal(t, th.Colors.OnDisabled, disabled.TextColor)
	assert.Equal(t, style.Num(0), disabled.BorderWidth, "disabled controls show no focus ring")

	focused := reg.Resolve(th, KindButton, State{Focused: true}, Options{})
	assert.Equal(t, style.Num(2), focused.BorderWidth)
	assert.Equal(t, th.Colors.Primary, focused.BorderColor)

	selected := reg.Resolve(th, KindChip, State{Selected: true}, Options{})
	assert.Equal(t, th.Colors.Secondary, selected.BackgroundColor)

	outline := reg.Resolve(th, KindButton, State{Pressed: true}, Options{Variant: VariantOutline})
	assert.Equal(t, tokens.Transparent, outline.BackgroundColor)
	assert.Equal(t, style.Num(1), outline.BorderWidth)
}

func TestNeumorphicPressedCardWithOverride(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignNeumorphic, theme.ModeLight, nil)
	opts := Options{BackgroundOverride: "#ffffff"}

	up := reg.Resolve(th, KindCard, State{}, opts)
	down := reg.Resolve(th, KindCard, State{Pressed: true}, opts)

	require.Len(t, up.Shadows, 2)
	require.Len(t, down.Shadows, 2)
	assert.Positive(t, up.Shadows[0].DX)
	assert.Positive(t, up.Shadows[0].DY)
	assert.Negative(t, down.Shadows[0].DX)
	assert.Negative(t, down.Shadows[0].DY)
	assert.Equal(t, "#ffffff", down.BackgroundColor)
	assert.True(t, down.Shadows[0].Inset)
}

func TestNeumorphicInversion(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	for _, mode := range []theme.Mode{theme.ModeLight, theme.ModeDark} {
		th := theme.Compose(theme.DesignNeumorphic, mode, nil)
		for _, kind := range Kinds() {
			for _, intensity := range []Intensity{IntensitySubtle, IntensityMedium, IntensityStrong} {
				for _, disabled := range []bool{false, true} {
					opts := Options{Intensity: intensity}
					up := reg.Resolve(th, kind, State{Disabled: disabled}, opts)
					down := reg.Resolve(th, kind, State{Pressed: true, Disabled: disabled}, opts)

					require.Len(t, down.Shadows, len(up.Shadows))
					for i := range up.Shadows {
						assert.Equal(t, -up.Shadows[i].DX, down.Shadows[i].DX, kind.String())
						assert.Equal(t, -up.Shadows[i].DY, down.Shadows[i].DY, kind.String())
						assert.Equal(t, up.Shadows[i].Blur, down.Shadows[i].Blur, kind.String())
						assert.Equal(t, math.Abs(up.Shadows[i].DX)*tokens.NeumorphicBlurRatio, up.Shadows[i].Blur)
					}
				}
			}
		}
	}
}

func TestNeumorphicSelectedToggleReadsPressed(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignNeumorphic, theme.ModeLight, nil)

	on := reg.Resolve(th, KindToggle, State{Selected: true}, Options{})
	require.NotEmpty(t, on.Shadows)
	assert.True(t, on.Shadows[0].Inset)
}

func TestSkeuomorphicCarriesGradientAndFlatColor(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignSkeuomorphic, theme.ModeLight, nil)

	for _, kind := range Kinds() {
		for _, state := range []State{{}, {Pressed: true}, {Disabled: true}, {Pressed: true, Disabled: true}} {
			d := reg.Resolve(th, kind, state, Options{})
			require.GreaterOrEqual(t, len(d.Gradient), 2, kind.String())
			require.LessOrEqual(t, len(d.Gradient), 3, kind.String())
			assert.Equal(t, d.Gradient[len(d.Gradient)/2].Color, d.BackgroundColor)
			assert.NotEmpty(t, d.Shadows)
			assert.LessOrEqual(t, len(d.Shadows), 3)
		}
	}

	pressed := reg.Resolve(th, KindButton, State{Pressed: true}, Options{})
	assert.True(t, pressed.Shadows[0].Inset)
}

func TestGlassmorphicTables(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignGlassmorphic, theme.ModeLight, nil)

	d := reg.Resolve(th, KindBadge, State{}, Options{Intensity: IntensityStrong, Blur: BlurHeavy})
	assert.InDelta(t, 0.28, tokens.Alpha(d.BackgroundColor), 0.001)
	require.NotNil(t, d.Backdrop)
	assert.Equal(t, float64(24), d.Backdrop.Blur)
	assert.InDelta(t, 0.92, tokens.Alpha(d.Backdrop.FallbackBackground), 0.001)

	require.Len(t, d.Backdrop.FallbackShadows, len(d.Shadows))
	for i := range d.Shadows {
		assert.InDelta(t, tokens.Alpha(d.Shadows[i].Color)*2, tokens.Alpha(d.Backdrop.FallbackShadows[i].Color), 0.01)
	}

	defaults := reg.Resolve(th, KindCard, State{}, Options{})
	assert.InDelta(t, 0.18, tokens.Alpha(defaults.BackgroundColor), 0.001)
	assert.Equal(t, float64(16), defaults.Backdrop.Blur)

	disabled := reg.Resolve(th, KindCard, State{Disabled: true}, Options{})
	require.NotNil(t, disabled.Opacity)
	assert.Equal(t, 0.5, *disabled.Opacity)
}

func TestRetroTables(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignRetro, theme.ModeDark, nil)

	d := reg.Resolve(th, KindButton, State{}, Options{
		Era:             EraVaporwave,
		BorderThickness: BorderThick,
		CornerRadius:    CornerRound,
		Glow:            true,
	})
	vapor := tokens.RetroEras[EraVaporwave-1]
	assert.Equal(t, style.Num(4), d.BorderWidth)
	assert.Equal(t, style.Num(12), d.BorderRadius)
	assert.Equal(t, vapor.Primary, d.BackgroundColor)
	require.Len(t, d.Shadows, 1)
	assert.Equal(t, style.Shadow{DX: 4, DY: 4, Color: vapor.Border}, d.Shadows[0])
	require.NotNil(t, d.Glow)
	assert.Equal(t, vapor.Glow, d.Glow.Color)

	soft := reg.Resolve(th, KindButton, State{}, Options{ShadowStyle: ShadowSoft})
	require.Len(t, soft.Shadows, 1)
	assert.Equal(t, float64(6), soft.Shadows[0].Blur)

	none := reg.Resolve(th, KindButton, State{}, Options{ShadowStyle: ShadowNone})
	assert.Empty(t, none.Shadows)

	pressed := reg.Resolve(th, KindButton, State{Pressed: true}, Options{})
	require.Len(t, pressed.Shadows, 1)
	assert.Equal(t, float64(2), pressed.Shadows[0].DX)
	assert.Len(t, pressed.Transforms, 2)
}

func TestUnimplementedDesignFallsBackToFlat(t *testing.T) {
	t.Parallel()

	reg, buf := newTestRegistry(t)
	flat := theme.Compose(theme.DesignFlat, theme.ModeLight, nil)
	material := theme.Compose(theme.DesignMaterial, theme.ModeLight, nil)

	for _, kind := range Kinds() {
		state := State{Pressed: true}
		want := reg.Resolve(flat, kind, state, Options{})
		got := reg.Resolve(material, kind, state, Options{})
		assert.True(t, style.Equal(want, got), kind.String())
	}

	out := strings.TrimSpace(buf.String())
	require.Equal(t, 1, strings.Count(out, "\n")+1, out)
	assert.Contains(t, out, `"design":"material"`)
	assert.Contains(t, out, `"fallback":"flat"`)

	reg.Resolve(theme.Compose(theme.DesignSimplistic, theme.ModeLight, nil), KindCard, State{}, Options{})
	reg.Resolve(theme.Theme{Design: theme.Design(42)}, KindCard, State{}, Options{})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
}

func TestRegistrySupportsAndRegister(t *testing.T) {
	t.Parallel()

	reg, buf := newTestRegistry(t)
	for _, design := range []theme.Design{theme.DesignFlat, theme.DesignNeumorphic, theme.DesignSkeuomorphic, theme.DesignGlassmorphic, theme.DesignRetro} {
		assert.True(t, reg.Supports(design), design.String())
	}
	assert.False(t, reg.Supports(theme.DesignMaterial))

	reg.Register(theme.DesignMaterial, resolveRetro)
	reg.Register(theme.DesignSimplistic, nil)
	assert.True(t, reg.Supports(theme.DesignMaterial))
	assert.False(t, reg.Supports(theme.DesignSimplistic))

	th := theme.Compose(theme.DesignMaterial, theme.ModeLight, nil)
	d := reg.Resolve(th, KindButton, State{}, Options{})
	assert.Equal(t, style.Num(tokens.RetroBorderWidths[1]), d.BorderWidth)
	assert.Empty(t, buf.String(), "registered designs do not warn")
}

func TestFallbackWarnsOnceUnderConcurrency(t *testing.T) {
	t.Parallel()

	reg, buf := newTestRegistry(t)
	th := theme.Compose(theme.DesignMaterial, theme.ModeDark, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Resolve(th, KindButton, State{}, Options{})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	for _, design := range theme.Designs() {
		th := theme.Compose(design, theme.ModeDark, nil)
		for _, kind := range Kinds() {
			opts := Options{Variant: VariantDanger, Size: SizeLarge, Glow: true, Opacity: style.Float(0.9)}
			state := State{Focused: true, Selected: true}
			a := reg.Resolve(th, kind, state, opts)
			b := reg.Resolve(th, kind, state, opts)
			assert.True(t, style.Equal(a, b), "%s/%s", design, kind)
		}
	}
}

func TestCallerOverridesWin(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	for _, design := range theme.Designs() {
		th := theme.Compose(design, theme.ModeLight, nil)
		d := reg.Resolve(th, KindButton, State{Disabled: true, Selected: true}, Options{
			BackgroundOverride: " #123456 ",
			TextOverride:       "#abcdef",
			Opacity:            style.Float(3),
		})
		assert.Equal(t, "#123456", d.BackgroundColor, design.String())
		assert.Equal(t, "#abcdef", d.TextColor, design.String())
		require.NotNil(t, d.Opacity)
		assert.Equal(t, float64(1), *d.Opacity)
	}
}

func TestBuilderPrecedenceIgnoresAddOrder(t *testing.T) {
	t.Parallel()

	set := func(color string) StyleFunc {
		return func(d style.Descriptor, _ theme.Theme) style.Descriptor {
			d.BackgroundColor = color
			return d
		}
	}

	d := NewBuilder(theme.Default()).
		Add(LayerCaller, set("caller")).
		Add(LayerState, set("state")).
		Add(LayerDesign, set("design")).
		Add(LayerBase, set("base")).
		Build()
	assert.Equal(t, "caller", d.BackgroundColor)

	d = NewBuilder(theme.Default()).
		Add(LayerDesign, set("design")).
		Add(LayerBase, set("base")).
		Add(LayerDesign, set("design-2"), nil).
		Build()
	assert.Equal(t, "design-2", d.BackgroundColor)
}

func TestOptionsNormalizeClamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{
			name: "zero values select defaults",
			in:   Options{},
			want: Options{
				Size: SizeMedium, Era: EraEighties, Intensity: IntensityMedium, Blur: BlurMedium,
				CornerRadius: CornerSoft, BorderThickness: BorderMedium, ShadowStyle: ShadowHard,
			},
		},
		{
			name: "out of range values clamp to bounds",
			in: Options{
				Variant: Variant(-2), Size: Size(9), Era: Era(-1), Intensity: Intensity(99),
				Blur: BlurLevel(-5), CornerRadius: CornerRadius(7), BorderThickness: BorderThickness(-1),
				ShadowStyle: ShadowStyle(12),
			},
			want: Options{
				Variant: VariantPrimary, Size: SizeLarge, Era: EraSeventies, Intensity: IntensityStrong,
				Blur: BlurLight, CornerRadius: CornerRound, BorderThickness: BorderThin,
				ShadowStyle: ShadowSoft,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}

	nan := Options{Opacity: style.Float(math.NaN())}.Normalize()
	assert.Nil(t, nan.Opacity)

	low := Options{Opacity: style.Float(-1)}.Normalize()
	require.NotNil(t, low.Opacity)
	assert.Equal(t, float64(0), *low.Opacity)
}

func TestResolveClampsKind(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Default()
	assert.NotPanics(t, func() {
		got := reg.Resolve(th, Kind(99), State{}, Options{Intensity: -4, Era: 100})
		want := reg.Resolve(th, KindChip, State{}, Options{})
		assert.True(t, style.Equal(want, got))
	})
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	kind, ok := ParseKind("Modal")
	require.True(t, ok)
	assert.Equal(t, KindModal, kind)

	era, ok := ParseEra("y2k")
	require.True(t, ok)
	assert.Equal(t, EraY2K, era)

	_, ok = ParseVariant("loud")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(-1).String())
}

func TestTransitionAndFadeIn(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignNeumorphic, theme.ModeLight, nil)

	ends := reg.Transition(th, KindButton, State{}, State{Pressed: true}, Options{})
	assert.False(t, ends.From.Shadows[0].Inset)
	assert.True(t, ends.To.Shadows[0].Inset)

	fade := FadeIn(ends.To)
	require.NotNil(t, fade.From.Opacity)
	assert.Equal(t, float64(0), *fade.From.Opacity)
	require.Len(t, fade.From.Transforms, 1)
	assert.Equal(t, style.Transform{Op: style.TransformTranslateY, Value: 8}, fade.From.Transforms[0])
	assert.Equal(t, float64(1), *fade.To.Opacity)
	assert.Empty(t, fade.To.Transforms)
	assert.Nil(t, ends.To.Opacity, "FadeIn must not touch its input")
}

func TestGlassBackgroundOverrideReplacesFallback(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignGlassmorphic, theme.ModeDark, nil)

	plain := reg.Resolve(th, KindCard, State{}, Options{})
	require.NotNil(t, plain.Backdrop)
	assert.NotEqual(t, plain.BackgroundColor, plain.Backdrop.FallbackBackground)

	d := reg.Resolve(th, KindCard, State{Pressed: true}, Options{BackgroundOverride: "#336699"})
	require.NotNil(t, d.Backdrop)
	assert.Equal(t, "#336699", d.BackgroundColor)
	assert.Equal(t, "#336699", d.Backdrop.FallbackBackground)
	assert.Equal(t, plain.Backdrop.Blur, d.Backdrop.Blur)
}

func TestNeumorphicDistanceFollowsShadowPresets(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignNeumorphic, theme.ModeLight, nil)

	tests := []struct {
		kind   Kind
		preset string
	}{
		{KindButton, tokens.PresetButtonDefault},
		{KindChip, tokens.PresetButtonDefault},
		{KindCard, tokens.PresetCard},
		{KindModal, tokens.PresetModal},
		{KindInput, tokens.PresetInputFocused},
	}

	for _, tt := range tests {
		want := tokens.Neumorphic.Shadow(tt.preset)[0].DX
		d := reg.Resolve(th, tt.kind, State{}, Options{})
		require.NotEmpty(t, d.Shadows, tt.kind.String())
		assert.Equal(t, want, d.Shadows[0].DX, tt.kind.String())

		strong := reg.Resolve(th, tt.kind, State{}, Options{Intensity: IntensityStrong})
		assert.Equal(t, want*1.5, strong.Shadows[0].DX, tt.kind.String())
	}
}

func TestSkeuomorphicNamedShadowPresets(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	th := theme.Compose(theme.DesignSkeuomorphic, theme.ModeLight, nil)

	button := reg.Resolve(th, KindButton, State{}, Options{})
	assert.Equal(t, tokens.Skeuomorphic.Shadow(tokens.PresetButtonDefault), button.Shadows)

	pressed := reg.Resolve(th, KindButton, State{Pressed: true}, Options{})
	assert.Equal(t, tokens.Skeuomorphic.Shadow(tokens.PresetButtonPressed), pressed.Shadows)

	card := reg.Resolve(th, KindCard, State{}, Options{})
	assert.Equal(t, tokens.Skeuomorphic.Shadow(tokens.PresetCard), card.Shadows)

	modal := reg.Resolve(th, KindModal, State{}, Options{})
	assert.Equal(t, tokens.Skeuomorphic.Shadow(tokens.PresetModal), modal.Shadows)

	focused := reg.Resolve(th, KindInput, State{Focused: true}, Options{})
	assert.Equal(t, tokens.Skeuomorphic.Shadow(tokens.PresetInputFocused), focused.Shadows)
	assert.Equal(t, th.Colors.Primary, focused.BorderColor)
}

package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/dusk/internal/domain/entity"
	"github.com/bnema/dusk/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingOutput captures rendered frames.
type recordingOutput struct {
	frames []Frame
	err    error
}

func (*recordingOutput) Name() string { return "recording" }

func (r *recordingOutput) Render(_ context.Context, frame Frame) error {
	r.frames = append(r.frames, frame)
	return r.err
}

func TestNewManager_WithNilConfig(t *testing.T) {
	manager := NewManager(context.Background(), nil)

	require.NotNil(t, manager)
	assert.Equal(t, entity.ColorSchemeLight, manager.Scheme())
	assert.Equal(t, DefaultLightPalette(), manager.Frame().Light)
	assert.Equal(t, DefaultDarkPalette(), manager.Frame().Dark)
}

func TestNewManager_UsesConfigPalettes(t *testing.T) {
	cfg := &config.Config{
		Appearance: config.AppearanceConfig{
			DarkPalette: config.ColorPalette{Accent: "#ff00ff"},
		},
	}

	manager := NewManager(context.Background(), cfg)

	assert.Equal(t, "#ff00ff", manager.Frame().Dark.Accent)
	// Missing values fall back to defaults
	assert.Equal(t, DefaultDarkPalette().Background, manager.Frame().Dark.Background)
}

func TestNewManager_InvalidPaletteFallsBackToDefaults(t *testing.T) {
	cfg := &config.Config{
		Appearance: config.AppearanceConfig{
			LightPalette: config.ColorPalette{Accent: "#abcdef"},
			DarkPalette:  config.ColorPalette{Text: "white"},
		},
	}

	manager := NewManager(context.Background(), cfg)

	assert.Equal(t, DefaultLightPalette(), manager.Frame().Light)
	assert.Equal(t, DefaultDarkPalette(), manager.Frame().Dark)
}

func TestManager_Apply(t *testing.T) {
	ctx := context.Background()
	out := &recordingOutput{}
	manager := NewManager(ctx, nil, out)

	manager.Apply(ctx, entity.ColorSchemeDark)

	require.Len(t, out.frames, 1)
	frame := out.frames[0]
	assert.Equal(t, entity.ColorSchemeDark, frame.Scheme)
	assert.Equal(t, DefaultDarkPalette(), frame.Palette)
	assert.Equal(t, "#0f0f0f", frame.ThemeColor)
	assert.Equal(t, entity.ToggleIconSun, frame.ToggleIcon)
	assert.Equal(t, frame, manager.Frame())

	manager.Apply(ctx, entity.ColorSchemeLight)
	assert.Equal(t, DefaultLightPalette(), manager.Frame().Palette)
	assert.Equal(t, "#ffffff", out.frames[1].ThemeColor)
	assert.Equal(t, entity.ToggleIconMoon, out.frames[1].ToggleIcon)
}

func TestManager_Apply_OutputErrorDoesNotStopOthers(t *testing.T) {
	ctx := context.Background()
	failing := &recordingOutput{err: errors.New("disk full")}
	ok := &recordingOutput{}
	manager := NewManager(ctx, nil, failing, ok)

	manager.Apply(ctx, entity.ColorSchemeDark)

	assert.Len(t, failing.frames, 1)
	assert.Len(t, ok.frames, 1)
	assert.Equal(t, entity.ColorSchemeDark, manager.Scheme())
}

func TestManager_OnApply(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(ctx, nil)

	var seen []entity.ColorScheme
	unsubscribe := manager.OnApply(func(f Frame) { seen = append(seen, f.Scheme) })

	manager.Apply(ctx, entity.ColorSchemeDark)
	unsubscribe()
	manager.Apply(ctx, entity.ColorSchemeLight)

	assert.Equal(t, []entity.ColorScheme{entity.ColorSchemeDark}, seen)
}

func TestManager_UpdateFromConfig(t *testing.T) {
	ctx := context.Background()
	out := &recordingOutput{}
	manager := NewManager(ctx, nil, out)

	// Not applied yet: palettes change, nothing renders.
	manager.UpdateFromConfig(ctx, &config.Config{})
	assert.Empty(t, out.frames)

	manager.Apply(ctx, entity.ColorSchemeDark)
	manager.UpdateFromConfig(ctx, &config.Config{
		Appearance: config.AppearanceConfig{
			DarkPalette: config.ColorPalette{Background: "#000000"},
		},
	})

	require.Len(t, out.frames, 2)
	assert.Equal(t, "#000000", out.frames[1].Palette.Background)
	assert.Equal(t, entity.ColorSchemeDark, out.frames[1].Scheme)

	manager.UpdateFromConfig(ctx, nil)
	assert.Len(t, out.frames, 2)

	manager.UpdateFromConfig(ctx, &config.Config{
		Appearance: config.AppearanceConfig{
			DarkPalette: config.ColorPalette{Background: "#zzzzzz"},
		},
	})
	assert.Len(t, out.frames, 2, "an invalid palette must not render")
	assert.Equal(t, "#000000", manager.Frame().Dark.Background)
}

func TestPaletteFromConfig(t *testing.T) {
	assert.Equal(t, DefaultLightPalette(), PaletteFromConfig(nil, false))
	assert.Equal(t, DefaultDarkPalette(), PaletteFromConfig(nil, true))

	p := PaletteFromConfig(&config.ColorPalette{Text: "#123456"}, false)
	assert.Equal(t, "#123456", p.Text)
	assert.Equal(t, DefaultLightPalette().Success, p.Success)
}

func TestPalette_Validate(t *testing.T) {
	require.NoError(t, DefaultLightPalette().Validate())
	require.NoError(t, Palette{}.Validate())

	p := DefaultDarkPalette()
	p.Accent = "green"
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")

	p = DefaultDarkPalette()
	p.Border = "#fff"
	assert.Error(t, p.Validate(), "short hex form is not accepted by the config either")
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, "", Coalesce("", ""))
	assert.Equal(t, "", Coalesce())
}

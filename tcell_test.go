package colr

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTcellColor(t *testing.T) {
	blue, err := Named("blue")
	require.NoError(t, err)
	assert.Equal(t, tcell.PaletteColor(4), TcellColor(blue))

	ext, err := Extended(196)
	require.NoError(t, err)
	assert.Equal(t, tcell.PaletteColor(196), TcellColor(ext))

	rgb, err := RGB(10, 20, 30)
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(10, 20, 30), TcellColor(rgb))

	assert.Equal(t, tcell.ColorDefault, TcellColor(Default()))
}

func TestColorFromTcellRoundTrip(t *testing.T) {
	for _, v := range []func() (ColorValue, error){
		func() (ColorValue, error) { return Extended(7) },
		func() (ColorValue, error) { return Extended(203) },
		func() (ColorValue, error) { return RGB(1, 2, 3) },
		func() (ColorValue, error) { return Default(), nil },
	} {
		orig, err := v()
		require.NoError(t, err)
		back, err := ColorFromTcell(TcellColor(orig))
		require.NoError(t, err)
		assert.Equal(t, TcellColor(orig), TcellColor(back))
	}
}

func TestTcellStyle(t *testing.T) {
	red, err := Named("red")
	require.NoError(t, err)
	specs := []Spec{ForeSpec(red), StyleSpec(StyleBold), StyleSpec(StyleUnderline)}

	fg, bg, attrs := TcellStyle(specs).Decompose()
	assert.Equal(t, tcell.PaletteColor(1), fg)
	assert.Equal(t, tcell.ColorDefault, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrUnderline)
	assert.Zero(t, attrs&tcell.AttrItalic)
}

func TestTcellStyleResetClears(t *testing.T) {
	red, err := Named("red")
	require.NoError(t, err)
	specs := []Spec{ForeSpec(red), StyleSpec(StyleResetAll)}
	assert.Equal(t, tcell.StyleDefault, TcellStyle(specs))
}

func TestSpecsFromTcell(t *testing.T) {
	st := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(4)).
		Background(tcell.NewRGBColor(5, 6, 7)).
		Bold(true)

	specs, err := SpecsFromTcell(st)
	require.NoError(t, err)
	require.Len(t, specs, 3)

	// Folding the specs back reproduces the style
	assert.Equal(t, st, TcellStyle(specs))
}

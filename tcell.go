package colr

import (
	"github.com/gdamore/tcell/v2"
)

// Bridge for applications that render through a tcell screen instead
// of raw escape output. Colors and specs convert both ways so styled
// chains can feed cell-based drawing.

// TcellColor converts a color value to a tcell.Color.
func TcellColor(v ColorValue) tcell.Color {
	switch v.Kind {
	case ColorDefault:
		return tcell.ColorDefault
	case ColorNamed, ColorBasic, ColorExtended:
		return tcell.PaletteColor(int(v.num))
	default: // ColorRGB
		return tcell.NewRGBColor(int32(v.rgb.R), int32(v.rgb.G), int32(v.rgb.B))
	}
}

// ColorFromTcell converts a tcell.Color back to a color value. Special
// colors other than the default are rejected.
func ColorFromTcell(tc tcell.Color) (ColorValue, error) {
	if tc == tcell.ColorDefault {
		return Default(), nil
	}
	if !tc.Valid() {
		return ColorValue{}, ErrInvalidColor
	}
	if tc.IsRGB() {
		r, g, b := tc.RGB()
		return RGB(int(r), int(g), int(b))
	}
	return Extended(int(tc &^ (tcell.ColorValid | tcell.ColorIsRGB)))
}

// TcellStyle folds a spec list into a tcell.Style, applying entries in
// order so later colors win the way later escape codes would.
func TcellStyle(specs []Spec) tcell.Style {
	st := tcell.StyleDefault
	for _, sp := range specs {
		if sp.IsStyle {
			switch sp.Style {
			case StyleResetAll:
				st = tcell.StyleDefault
			case StyleBold:
				st = st.Bold(true)
			case StyleDim:
				st = st.Dim(true)
			case StyleItalic:
				st = st.Italic(true)
			case StyleUnderline:
				st = st.Underline(true)
			case StyleFlash:
				st = st.Blink(true)
			case StyleHighlight:
				st = st.Reverse(true)
			case StyleNormal:
				st = st.Normal()
			}
			continue
		}
		tc := TcellColor(sp.Value)
		if sp.Layer == Back {
			st = st.Background(tc)
		} else {
			st = st.Foreground(tc)
		}
	}
	return st
}

// SpecsFromTcell decomposes a tcell.Style into the equivalent spec
// list. Default layers are omitted rather than emitted as explicit
// default specs.
func SpecsFromTcell(st tcell.Style) ([]Spec, error) {
	fg, bg, attrs := st.Decompose()
	var specs []Spec
	if fg != tcell.ColorDefault {
		v, err := ColorFromTcell(fg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ForeSpec(v))
	}
	if bg != tcell.ColorDefault {
		v, err := ColorFromTcell(bg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, BackSpec(v))
	}
	for _, m := range []struct {
		attr  tcell.AttrMask
		style Style
	}{
		{tcell.AttrBold, StyleBold},
		{tcell.AttrDim, StyleDim},
		{tcell.AttrItalic, StyleItalic},
		{tcell.AttrUnderline, StyleUnderline},
		{tcell.AttrBlink, StyleFlash},
		{tcell.AttrReverse, StyleHighlight},
	} {
		if attrs&m.attr != 0 {
			specs = append(specs, StyleSpec(m.style))
		}
	}
	return specs, nil
}

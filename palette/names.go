package palette

import (
	"fmt"
	"sort"
	"strings"
)

// Basic color names in code order (indices 0-7). The bright variants
// (8-15) use the same names with a "light" prefix.
var basicNames = [8]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// NameToBasic resolves a basic color name to its palette index 0-15.
// Lookup is case-insensitive; "light" prefixed names map to the bright
// variants 8-15. Returns ErrInvalidColor for unknown names, including
// the reset aliases (see IsResetName).
func NameToBasic(name string) (uint8, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	offset := uint8(0)
	if trimmed, ok := strings.CutPrefix(n, "light"); ok {
		n = trimmed
		offset = 8
	}
	for i, basic := range basicNames {
		if n == basic {
			return uint8(i) + offset, nil
		}
	}
	return 0, fmt.Errorf("unknown color name %q: %w", name, ErrInvalidColor)
}

// IsResetName reports whether a name selects the terminal default color
// rather than a palette entry.
func IsResetName(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "reset", "normal", "default", "none":
		return true
	}
	return false
}

// Named extended colors. Standard CSS/X11 names where the RGB closely
// matches, descriptive compound names otherwise. Resolved to the nearest
// palette entry unless the caller asks for true color.
var namedColors = map[string]RGB{
	// Achromatic
	"charcoal":  {54, 69, 79},
	"dimgray":   {105, 105, 105},
	"gray":      {128, 128, 128},
	"silver":    {192, 192, 192},
	"lightgray": {211, 211, 211},
	"ivory":     {255, 255, 240},

	// Red / Pink
	"maroon":    {128, 0, 0},
	"darkred":   {139, 0, 0},
	"firebrick": {178, 34, 34},
	"crimson":   {220, 20, 60},
	"indianred": {205, 92, 92},
	"salmon":    {250, 128, 114},
	"coral":     {255, 127, 80},
	"hotpink":   {255, 105, 180},
	"pink":      {255, 192, 203},

	// Orange / Brown
	"saddlebrown": {139, 69, 19},
	"sienna":      {160, 82, 45},
	"chocolate":   {210, 105, 30},
	"peru":        {205, 133, 63},
	"orangered":   {255, 69, 0},
	"darkorange":  {255, 140, 0},
	"orange":      {255, 165, 0},
	"tan":         {210, 180, 140},

	// Yellow
	"darkgoldenrod": {184, 134, 11},
	"goldenrod":     {218, 165, 32},
	"gold":          {255, 215, 0},
	"khaki":         {240, 230, 140},
	"lemonchiffon":  {255, 250, 205},

	// Green
	"darkgreen":   {0, 100, 0},
	"forestgreen": {34, 139, 34},
	"seagreen":    {46, 139, 87},
	"olive":       {128, 128, 0},
	"limegreen":   {50, 205, 50},
	"lime":        {0, 255, 0},
	"springgreen": {0, 255, 127},
	"palegreen":   {152, 251, 152},

	// Cyan / Teal
	"teal":        {0, 128, 128},
	"darkcyan":    {0, 139, 139},
	"cadetblue":   {95, 158, 160},
	"turquoise":   {64, 224, 208},
	"aquamarine":  {127, 255, 212},
	"lightcyan":   {224, 255, 255},

	// Blue
	"navy":           {0, 0, 128},
	"midnightblue":   {25, 25, 112},
	"royalblue":      {65, 105, 225},
	"steelblue":      {70, 130, 180},
	"dodgerblue":     {30, 144, 255},
	"deepskyblue":    {0, 191, 255},
	"cornflowerblue": {100, 149, 237},
	"skyblue":        {135, 206, 235},
	"powderblue":     {176, 224, 230},

	// Purple / Violet
	"indigo":       {75, 0, 130},
	"purple":       {128, 0, 128},
	"darkviolet":   {148, 0, 211},
	"blueviolet":   {138, 43, 226},
	"mediumorchid": {186, 85, 211},
	"orchid":       {218, 112, 214},
	"plum":         {221, 160, 221},
	"lavender":     {230, 230, 250},
}

// NamedRGB looks up an extended color name. Case-insensitive; spaces
// and underscores are ignored so "deep sky blue" matches "deepskyblue".
func NamedRGB(name string) (RGB, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "")
	n = strings.ReplaceAll(n, "_", "")
	c, ok := namedColors[n]
	return c, ok
}

// Names returns all known extended color names, sorted.
func Names() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

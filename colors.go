package vtscreen

import "fmt"

// The eight standard color names, in ANSI parameter order (30-37 / 40-47).
var standardColorNames = [8]string{
	"black", "red", "green", "brown", "blue", "magenta", "cyan", "white",
}

// fgANSI maps SGR foreground parameters 30-39 to color names.
var fgANSI = buildColorMap(30, standardColorNames[:], "default")

// bgANSI maps SGR background parameters 40-49 to color names.
var bgANSI = buildColorMap(40, standardColorNames[:], "default")

// fgAIXTERM maps the non-standard bright-foreground parameters 90-97,
// introduced by aixterm and now supported nearly everywhere, to color
// names with a "bright-" prefix.
var fgAIXTERM = buildBrightColorMap(90, standardColorNames[:])

// bgAIXTERM is the background analog of fgAIXTERM (100-107).
var bgAIXTERM = buildBrightColorMap(100, standardColorNames[:])

func buildColorMap(base int, names []string, defaultName string) map[int]string {
	m := make(map[int]string, len(names)+1)
	for i, name := range names {
		m[base+i] = name
	}
	m[base+9] = defaultName
	return m
}

func buildBrightColorMap(base int, names []string) map[int]string {
	m := make(map[int]string, len(names))
	for i, name := range names {
		m[base+i] = "bright-" + name
	}
	return m
}

// baseColor256 holds the RGB triples for indices 0-15, taken directly from
// the reference implementation's FG_BG_256 table (xterm's default 16-color
// values, not the plain ANSI names).
var baseColor256 = [16][3]int{
	{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
	{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
	{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// color256 is the 256-entry indexed palette used by the extended SGR forms
// "38;5;N" and "48;5;N", built the same way as the reference terminfo
// palette: 16 base colors, a 6x6x6 color cube, then a 24-step grayscale
// ramp. All entries are opaque "rrggbb" hex strings.
var color256 = buildColor256()

func buildColor256() [256]string {
	var table [256]string
	for i, rgb := range baseColor256 {
		table[i] = hexColor(rgb[0], rgb[1], rgb[2])
	}

	steps := [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				table[i] = hexColor(steps[r], steps[g], steps[b])
				i++
			}
		}
	}

	for shade := 0; shade < 24; shade++ {
		v := 8 + shade*10
		table[i] = hexColor(v, v, v)
		i++
	}

	return table
}

func hexColor(r, g, b int) string {
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// colorFromIndex resolves an 0-255 palette index to a color name/hex string,
// clamping out-of-range indexes into range rather than failing.
func colorFromIndex(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return color256[n]
}

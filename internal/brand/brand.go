// Package brand holds the brand palette and the icon designs drawn with
// canvas primitives. Every design is authored on a MasterSize square.
package brand

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sixtyxsix/brandgen/internal/canvas"
	"github.com/sixtyxsix/brandgen/internal/palette"
)

// MasterSize is the edge length every design is drawn at.
const MasterSize = 1024

// Brand colors.
var (
	Accent  = palette.MustParse("#2CF1B0")
	DarkBG  = palette.MustParse("#0B0F0E")
	LightBG = palette.MustParse("#F6F5F2")
)

// Theme is a named background color.
type Theme struct {
	Name       string
	Background canvas.Color
}

// Themes lists the built-in themes in output order.
var Themes = []Theme{
	{Name: "dark", Background: DarkBG},
	{Name: "light", Background: LightBG},
}

// Design draws one icon onto a MasterSize canvas that is already filled
// with the theme background.
type Design struct {
	Name string
	Draw func(c *canvas.Canvas, accent canvas.Color)
}

// Designs lists the built-in icon designs in output order.
var Designs = []Design{
	{Name: "option-a", Draw: drawOptionA},
	{Name: "option-b", Draw: drawOptionB},
	{Name: "option-c", Draw: drawOptionC},
	{Name: "option-d", Draw: drawOptionD},
}

// Render draws d on a fresh MasterSize canvas with the given background.
func Render(d Design, bg, accent canvas.Color) *canvas.Canvas {
	c := canvas.New(MasterSize, MasterSize, bg)
	d.Draw(c, accent)
	return c
}

// SelectDesigns resolves design names. An empty list selects all designs.
// The short form "a" is accepted for "option-a".
func SelectDesigns(names []string) ([]Design, error) {
	if len(names) == 0 {
		return Designs, nil
	}
	var out []Design
	seen := map[string]bool{}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if !strings.HasPrefix(n, "option-") {
			n = "option-" + n
		}
		d, ok := lookupDesign(n)
		if !ok {
			return nil, fmt.Errorf("unknown design %q (have %s)", n, strings.Join(designNames(), ", "))
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, d)
		}
	}
	return out, nil
}

// SelectThemes resolves theme names. An empty list selects all themes.
func SelectThemes(names []string) ([]Theme, error) {
	if len(names) == 0 {
		return Themes, nil
	}
	var out []Theme
	seen := map[string]bool{}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		var found bool
		for _, th := range Themes {
			if th.Name == n {
				found = true
				if !seen[n] {
					seen[n] = true
					out = append(out, th)
				}
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown theme %q", n)
		}
	}
	return out, nil
}

func lookupDesign(name string) (Design, bool) {
	for _, d := range Designs {
		if d.Name == name {
			return d, true
		}
	}
	return Design{}, false
}

func designNames() []string {
	names := make([]string, len(Designs))
	for i, d := range Designs {
		names[i] = d.Name
	}
	sort.Strings(names)
	return names
}

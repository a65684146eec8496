package names

import (
	"fmt"
	"strings"
)

var worlds = []string{
	"al", "bb", "ca", "dc", "di", "eh", "es", "gumi", "hb", "he",
	"lk", "lm", "mu", "nm", "po", "tr", "tt", "wi", "wm", "zz",
}

var languages = []string{"jp", "us", "uk", "fr", "it", "gr", "sp"}

const maxAreaIndex = 100

// Per-world, per-language templates. Indexed templates carry a %02d verb.
var worldTemplates = []string{
	"msg/{lang}/{world}.bar",
}

var areaTemplates = []string{
	"ard/{lang}/{world}%02d.ard",
	"ard/{world}%02d.ard",
	"map/{lang}/{world}%02d.map",
	"map/{world}%02d.map",
}

// Enumerate expands the world and language templates into file names.
func Enumerate() []string {
	var out []string

	for _, world := range worlds {
		for _, lang := range languages {
			r := strings.NewReplacer("{world}", world, "{lang}", lang)

			for _, tpl := range worldTemplates {
				out = append(out, r.Replace(tpl))
			}
			for _, tpl := range areaTemplates {
				pattern := r.Replace(tpl)
				for i := 0; i < maxAreaIndex; i++ {
					out = append(out, fmt.Sprintf(pattern, i))
				}
			}
		}
	}

	return out
}

// rule derives a format variant of a listed file: when a name contains
// trigger, the first occurrence of from is replaced with to.
type rule struct {
	trigger string
	from    string
	to      string
}

var rules = []rule{
	// animation sets ship alongside their binaries
	{trigger: "/anm/", from: ".anb", to: ".mset"},
	// remastered audio streams
	{trigger: "bgm/", from: ".bgm", to: ".win32.scd"},
	{trigger: "voice/", from: ".vag", to: ".win32.scd"},
	{trigger: "voice/", from: ".vag", to: ".win32.vsb"},
}

// Derive returns the variant names a listed file implies.
func Derive(name string) []string {
	var out []string
	for _, r := range rules {
		if strings.Contains(name, r.trigger) && strings.Contains(name, r.from) {
			out = append(out, strings.Replace(name, r.from, r.to, 1))
		}
	}
	return out
}

package profile

import "sort"

// Profile defines which square icon sizes a build emits.
type Profile struct {
	Name  string
	Sizes []int // edge lengths in pixels, besides the master
}

// Built-in profiles.
var profiles = map[string]Profile{
	"master": {
		Name:  "master",
		Sizes: nil,
	},
	"ios": {
		Name:  "ios",
		Sizes: []int{1024, 180, 167, 152, 120, 87, 80, 76, 60, 58, 40, 29, 20},
	},
	"android": {
		Name:  "android",
		Sizes: []int{512, 192, 144, 96, 72, 48},
	},
	"web": {
		Name:  "web",
		Sizes: []int{512, 192, 180, 32, 16},
	},
}

func init() {
	seen := map[int]bool{}
	var all []int
	for _, name := range []string{"ios", "android", "web"} {
		for _, s := range profiles[name].Sizes {
			if !seen[s] {
				seen[s] = true
				all = append(all, s)
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(all)))
	profiles["all"] = Profile{Name: "all", Sizes: all}
}

// Get returns a profile by name. Falls back to master if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["master"]
	p.Name = name // preserve requested name
	return p
}

// Names returns the built-in profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EffectiveSizes returns the master size followed by every profile size
// that does not exceed it, largest first, without duplicates.
func (p Profile) EffectiveSizes(master int) []int {
	seen := map[int]bool{master: true}
	result := []int{master}

	var rest []int
	for _, s := range p.Sizes {
		if s <= 0 || s > master {
			continue // don't upscale
		}
		if !seen[s] {
			seen[s] = true
			rest = append(rest, s)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rest)))
	return append(result, rest...)
}

// Package filter contains the name filtering logic used to decide which
// graphs and storage engines the plugin reports on.  Filter instances
// have an Enabled function which takes a name and returns whether that
// name passes the filter.
package filter

import "regexp"

// NameFilter resolves include/exclude name lists into enable/disable
// decisions.  An excluded name is always disabled, even when it also
// appears in the include list.  A non-empty include list disables every
// name not on it; with no include list all non-excluded names are
// enabled.
type NameFilter struct {
	include map[string]bool
	exclude map[string]bool
}

// NewNameFilter returns a filter over the given include and exclude
// name lists.
func NewNameFilter(include []string, exclude []string) *NameFilter {
	f := &NameFilter{
		include: make(map[string]bool),
		exclude: make(map[string]bool),
	}
	for _, name := range include {
		f.include[name] = true
	}
	for _, name := range exclude {
		f.exclude[name] = true
	}
	return f
}

// Enabled returns whether name passes the filter.
func (f *NameFilter) Enabled(name string) bool {
	if f.exclude[name] {
		return false
	}
	if len(f.include) > 0 {
		return f.include[name]
	}
	return true
}

// ValidateNames checks every name against pattern and returns the first
// name that does not match, or "" if all match.  Used at config time so
// that malformed names are rejected before any graph is built.
func ValidateNames(names []string, pattern *regexp.Regexp) string {
	for _, name := range names {
		if !pattern.MatchString(name) {
			return name
		}
	}
	return ""
}

package mirror

import (
	"path/filepath"
	"strings"
)

//IsHidden reports whether a base name marks a hidden entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

//HasHiddenSegment reports whether any component of rel is hidden.
//Anything below such a component is never reached by the walk.
func HasHiddenSegment(rel string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if seg != "." && seg != ".." && IsHidden(seg) {
			return true
		}
	}
	return false
}

package mirror

import (
	"fmt"
	"path/filepath"
	"strings"
)

const rootSegment = string(filepath.Separator)

//segments splits a cleaned path into its components. An absolute path starts with a separator segment,
//so absolute and relative paths never share a prefix.
func segments(path string) []string {
	path = filepath.Clean(path)
	if path == "." {
		return nil
	}
	var segs []string
	if vol := filepath.VolumeName(path); vol != "" {
		segs = append(segs, vol)
		path = path[len(vol):]
	}
	if strings.HasPrefix(path, rootSegment) {
		segs = append(segs, rootSegment)
	}
	for _, s := range strings.Split(path, rootSegment) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

//Relative returns the components of path that follow root, joined back together.
//It compares whole segments, so /a/foo is not a prefix of /a/foobar. The root itself yields "".
func Relative(root, path string) (string, error) {
	rootSegs, pathSegs := segments(root), segments(path)
	if len(pathSegs) < len(rootSegs) {
		return "", newError(KindPathMirroring, "relative", path,
			fmt.Errorf("path is shorter than root %q", root))
	}
	for i, seg := range rootSegs {
		if pathSegs[i] != seg {
			return "", newError(KindPathMirroring, "relative", path,
				fmt.Errorf("segment %d %q differs from root %q", i, pathSegs[i], root))
		}
	}
	return filepath.Join(pathSegs[len(rootSegs):]...), nil
}

//Path maps current, which must be srcRoot or one of its descendants, onto the destination tree.
func Path(srcRoot, current, dstRoot string) (string, error) {
	rel, err := Relative(srcRoot, current)
	if err != nil {
		return "", err
	}
	return filepath.Join(dstRoot, rel), nil
}

//Reachable reports whether the walk from root would visit path: path is root or lies below it,
//and no component in between is hidden.
func Reachable(root, path string) bool {
	rel, err := Relative(root, path)
	return err == nil && !HasHiddenSegment(rel)
}

//Overlapping reports whether either tree reaches into the other, so mirroring one onto the other
//would write into the source or walk its own output.
func Overlapping(src, dst string) bool {
	return Reachable(src, dst) || Reachable(dst, src)
}

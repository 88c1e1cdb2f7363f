package iout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
)

const maxLinkHops = 255

var ErrTooManyLinks = errors.New("too many levels of symbolic links")

//RealPath resolves every symbolic link in path, like filepath.EvalSymlinks but through fsys.
//The part of the path that does not exist yet is appended unresolved.
func RealPath(fsys billy.Filesystem, path string) (string, error) {
	cur := "."
	if filepath.IsAbs(path) {
		cur = string(filepath.Separator)
	}
	pending := splitPath(path)
	hops := 0

	for len(pending) > 0 {
		seg := pending[0]
		pending = pending[1:]
		if seg == ".." {
			cur = filepath.Dir(cur)
			continue
		}

		next := filepath.Join(cur, seg)
		info, err := fsys.Lstat(next)
		if errors.Is(err, fs.ErrNotExist) {
			return filepath.Join(append([]string{next}, pending...)...), nil
		}
		if err != nil {
			return "", fmt.Errorf("cannot resolve %q: %w", path, err)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			cur = next
			continue
		}

		if hops++; hops > maxLinkHops {
			return "", fmt.Errorf("cannot resolve %q: %w", path, ErrTooManyLinks)
		}
		target, err := fsys.Readlink(next)
		if err != nil {
			return "", fmt.Errorf("cannot resolve %q: %w", path, err)
		}
		if filepath.IsAbs(target) {
			cur = string(filepath.Separator)
		}
		pending = append(splitPath(target), pending...)
	}
	return cur, nil
}

func splitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, string(filepath.Separator)) {
		if s != "" && s != "." {
			segs = append(segs, s)
		}
	}
	return segs
}

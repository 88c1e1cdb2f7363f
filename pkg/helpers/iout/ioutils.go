package iout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/go-git/go-billy/v5"
)

const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644

	writeChunk = 32 * 1024
)

var (
	ErrNotDir = errors.New("path exists and is not a directory")
	ErrIsDir  = errors.New("path exists and is a directory")
)

func IsErrNotDir(err error) bool { return errors.Is(err, ErrNotDir) }
func IsErrIsDir(err error) bool  { return errors.Is(err, ErrIsDir) }

//PathState describes what currently occupies a path.
type PathState int

const (
	StateMissing PathState = iota
	StateDir
	StateFile
)

//StatPath stats the path (following symlinks) and reports what is there.
func StatPath(fsys billy.Filesystem, path string) (PathState, error) {
	info, err := fsys.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return StateDir, nil
	case err == nil:
		return StateFile, nil
	case errors.Is(err, fs.ErrNotExist):
		return StateMissing, nil
	default:
		return StateMissing, fmt.Errorf("cannot stat %q: %w", path, err)
	}
}

//ListDir reads the directory entries sorted by name.
func ListDir(fsys billy.Filesystem, dir string) ([]os.FileInfo, error) {
	infos, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read dir: %w", err)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	return infos, nil
}

//IsDirEntry tells whether a listed entry should be treated as a directory.
//A symlink counts as a directory when its target is one; a dangling link does not.
func IsDirEntry(fsys billy.Filesystem, path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := fsys.Stat(path)
	return err == nil && target.IsDir()
}

//IsSymlink reports whether a listed entry is a symbolic link.
func IsSymlink(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}

//EnsureDirExists creates the directory if it is missing. The returned flag is false when it already existed.
func EnsureDirExists(fsys billy.Filesystem, path string) (bool, error) {
	state, err := StatPath(fsys, path)
	if err != nil {
		return false, fmt.Errorf("cannot make dir: %w", err)
	}
	switch state {
	case StateDir:
		return false, nil
	case StateFile:
		return false, fmt.Errorf("cannot make dir %q: %w", path, ErrNotDir)
	}
	if err := fsys.MkdirAll(path, DirPerm); err != nil {
		return false, fmt.Errorf("cannot make dir: %w", err)
	}
	return true, nil
}

//WritePlaceholder creates or truncates the file at path and fills it with size copies of fill.
func WritePlaceholder(fsys billy.Filesystem, path string, size int64, fill byte) (err error) {
	if state, perr := StatPath(fsys, path); perr != nil {
		return fmt.Errorf("cannot create file: %w", perr)
	} else if state == StateDir {
		return fmt.Errorf("cannot create file %q: %w", path, ErrIsDir)
	}

	out, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close file: %w", cerr)
		}
	}()

	chunk := make([]byte, minInt64(size, writeChunk))
	for i := range chunk {
		chunk[i] = fill
	}
	for left := size; left > 0; {
		n := minInt64(left, int64(len(chunk)))
		if _, err = out.Write(chunk[:n]); err != nil {
			return fmt.Errorf("cannot write file content: %w", err)
		}
		left -= n
	}
	return nil
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

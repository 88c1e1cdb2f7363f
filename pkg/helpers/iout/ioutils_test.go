package iout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

func TestWritePlaceholder(t *testing.T) {
	tests := []struct {
		name string
		size int64
	}{
		{name: "empty", size: 0},
		{name: "default", size: 8},
		{name: "one chunk", size: writeChunk},
		{name: "several chunks", size: 2*writeChunk + 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requires := require.New(t)
			fsys := memfs.New()
			requires.NoError(fsys.MkdirAll("/dst", DirPerm))

			err := WritePlaceholder(fsys, "/dst/file.bin", tt.size, 'A')

			requires.NoError(err)
			data, err := util.ReadFile(fsys, "/dst/file.bin")
			requires.NoError(err)
			requires.Equal(bytes.Repeat([]byte{'A'}, int(tt.size)), data)
		})
	}
}

func TestWritePlaceholderTruncatesExistingFile(t *testing.T) {
	requires := require.New(t)
	fsys := memfs.New()
	requires.NoError(util.WriteFile(fsys, "/dst/file.txt", []byte("some much longer original content"), FilePerm))

	requires.NoError(WritePlaceholder(fsys, "/dst/file.txt", 4, 'z'))

	data, err := util.ReadFile(fsys, "/dst/file.txt")
	requires.NoError(err)
	requires.Equal("zzzz", string(data))
}

func TestWritePlaceholderOverDir(t *testing.T) {
	requires := require.New(t)
	fsys := memfs.New()
	requires.NoError(fsys.MkdirAll("/dst/taken", DirPerm))

	err := WritePlaceholder(fsys, "/dst/taken", 8, 'A')

	requires.Error(err)
	requires.True(IsErrIsDir(err))
}

func TestEnsureDirExists(t *testing.T) {
	requires := require.New(t)
	fsys := memfs.New()
	requires.NoError(fsys.MkdirAll("/dst", DirPerm))

	created, err := EnsureDirExists(fsys, "/dst/sub")
	requires.NoError(err)
	requires.True(created)

	created, err = EnsureDirExists(fsys, "/dst/sub")
	requires.NoError(err)
	requires.False(created)

	state, err := StatPath(fsys, "/dst/sub")
	requires.NoError(err)
	requires.Equal(StateDir, state)
}

func TestEnsureDirExistsCannotMakeDir(t *testing.T) {
	requires := require.New(t)
	fsys := memfs.New()
	requires.NoError(util.WriteFile(fsys, "/dst/some_file.txt", []byte("x"), FilePerm))

	_, err := EnsureDirExists(fsys, "/dst/some_file.txt") // file is not a directory!

	requires.Error(err)
	requires.ErrorContains(err, "cannot make dir")
	requires.True(IsErrNotDir(err))
}

func TestListDirIsSorted(t *testing.T) {
	requires := require.New(t)
	fsys := memfs.New()
	for _, name := range []string{"c.txt", "a.txt", "b"} {
		requires.NoError(util.WriteFile(fsys, filepath.Join("/src", name), nil, FilePerm))
	}

	infos, err := ListDir(fsys, "/src")

	requires.NoError(err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	requires.Equal([]string{"a.txt", "b", "c.txt"}, names)
}

func TestStatPathMissing(t *testing.T) {
	state, err := StatPath(memfs.New(), "/nowhere")
	require.NoError(t, err)
	require.Equal(t, StateMissing, state)
}

func TestIsDirEntryFollowsSymlinks(t *testing.T) {
	requires := require.New(t)
	root := t.TempDir()
	requires.NoError(os.Mkdir(filepath.Join(root, "real"), DirPerm))
	requires.NoError(os.WriteFile(filepath.Join(root, "file"), []byte("x"), FilePerm))
	requires.NoError(os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "to_dir")))
	requires.NoError(os.Symlink(filepath.Join(root, "file"), filepath.Join(root, "to_file")))
	requires.NoError(os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	fsys := NewOSFS()
	infos, err := ListDir(fsys, root)
	requires.NoError(err)

	got := make(map[string]bool, len(infos))
	for _, info := range infos {
		got[info.Name()] = IsDirEntry(fsys, filepath.Join(root, info.Name()), info)
	}
	requires.Equal(map[string]bool{
		"dangling": false,
		"file":     false,
		"real":     true,
		"to_dir":   true,
		"to_file":  false,
	}, got)
}

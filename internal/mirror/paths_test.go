package mirror

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		current string
		dst     string
		want    string
		wantErr bool
	}{
		{name: "root itself", src: "/s", current: "/s", dst: "/d", want: "/d"},
		{name: "direct child", src: "/s", current: "/s/b.txt", dst: "/d", want: "/d/b.txt"},
		{name: "nested", src: "/s", current: "/s/a/b/x.txt", dst: "/mnt/d", want: "/mnt/d/a/b/x.txt"},
		{name: "trailing separator on root", src: "/s/", current: "/s/a", dst: "/d/", want: "/d/a"},
		{name: "uncleaned paths", src: "/s/./x/..", current: "/s//a/./b", dst: "/d", want: "/d/a/b"},
		{name: "relative roots", src: "src", current: "src/a/b", dst: "out", want: "out/a/b"},
		{name: "dot prefixed relative", src: "./src", current: "src/a", dst: "out", want: "out/a"},
		{name: "partial segment", src: "/a/foo", current: "/a/foobar/x", dst: "/d", wantErr: true},
		{name: "diverging", src: "/a/b", current: "/a/c/d", dst: "/d", wantErr: true},
		{name: "shorter than root", src: "/a/b", current: "/a", dst: "/d", wantErr: true},
		{name: "absolute against relative", src: "/src", current: "src/a", dst: "/d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requires := require.New(t)

			got, err := Path(tt.src, tt.current, tt.dst)

			if tt.wantErr {
				requires.Error(err)
				requires.ErrorIs(err, ErrPathMirroring)
				requires.Equal(KindPathMirroring, KindOf(err))
				return
			}
			requires.NoError(err)
			requires.Equal(tt.want, got)
		})
	}
}

func TestRelativeKeepsNames(t *testing.T) {
	rel, err := Relative("/cache", "/cache/Derived Data/Build (1)/.keep/ünïcode.o")
	require.NoError(t, err)
	require.Equal(t, "Derived Data/Build (1)/.keep/ünïcode.o", rel)
}

func TestReachable(t *testing.T) {
	requires := require.New(t)
	requires.True(Reachable("/a", "/a"))
	requires.True(Reachable("/a", "/a/b"))
	requires.False(Reachable("/a/b", "/a"))
	requires.False(Reachable("/a/foo", "/a/foobar"))
	requires.False(Reachable("/a", "/a/.hidden/b"))
}

func TestOverlapping(t *testing.T) {
	tests := []struct {
		name string
		src  string
		dst  string
		want bool
	}{
		{name: "siblings", src: "/d/src", dst: "/d/dst", want: false},
		{name: "same", src: "/d", dst: "/d", want: true},
		{name: "destination inside source", src: "/d", dst: "/d/out", want: true},
		{name: "source inside destination", src: "/d/a", dst: "/d", want: true},
		{name: "destination under hidden source dir", src: "/d", dst: "/d/.mirror", want: false},
		{name: "source under hidden destination dir", src: "/d/.cache/src", dst: "/d", want: false},
		{name: "partial segment", src: "/a/foo", dst: "/a/foobar", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Overlapping(tt.src, tt.dst))
		})
	}
}

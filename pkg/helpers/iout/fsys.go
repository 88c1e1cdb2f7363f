package iout

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

//NewOSFS returns the native filesystem rooted at "/". Every path passed to it must be absolute.
func NewOSFS() billy.Filesystem {
	return osfs.New("/")
}

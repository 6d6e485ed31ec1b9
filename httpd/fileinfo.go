package httpd

import (
	"os"
	"path/filepath"
	"strings"
)

// FileInfo is the result of mapping a request path onto the document root.
type FileInfo struct {
	Path string
	Size int64 // valid only when OK
	OK   bool  // exists, is a regular file and is readable
}

// Resolve joins docroot and urlpath with a slash and reports whether the
// result is a readable regular file. The path is not normalized, so ".."
// segments can leave docroot; see ResolveConfined. The file is not opened.
func Resolve(docroot, urlpath string) *FileInfo {
	info := &FileInfo{Path: docroot + "/" + urlpath}
	st, err := os.Stat(info.Path)
	if err != nil || !st.Mode().IsRegular() {
		return info
	}
	if !readable(info.Path, st) {
		return info
	}
	info.Size = st.Size()
	info.OK = true
	return info
}

// ResolveConfined is Resolve that also reports not-ok when the cleaned
// path lies outside docroot.
func ResolveConfined(docroot, urlpath string) *FileInfo {
	info := Resolve(docroot, urlpath)
	if info.OK && !within(docroot, info.Path) {
		info.OK = false
		info.Size = 0
	}
	return info
}

// within compares lexically; symbolic links are not followed.
func within(root, p string) bool {
	root, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	p, err = filepath.Abs(p)
	if err != nil {
		return false
	}
	if root == string(filepath.Separator) {
		return true
	}
	return p == root || strings.HasPrefix(p, root+string(filepath.Separator))
}

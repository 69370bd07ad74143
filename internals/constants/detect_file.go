package constants

import (
	"path/filepath"
	"strings"
)

// DefaultCoverImage dipakai saat buku ditambahkan tanpa gambar sampul.
const DefaultCoverImage = "default.jpeg"

var allowedImageExt = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

func IsAllowedImageExt(filename string) bool {
	_, ok := allowedImageExt[strings.ToLower(filepath.Ext(filename))]
	return ok
}

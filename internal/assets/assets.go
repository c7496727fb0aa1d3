// Package assets names the optional files next to the binary and holds the
// built-in font.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp"
)

const (
	BackgroundFile = "bg.jpg"
	FontFile       = "fonts.ttf"
)

// DefaultFontTTF is used whenever FontFile is missing or unreadable.
var DefaultFontTTF = goregular.TTF

// LoadBackground decodes the background image at path. JPEG, PNG, BMP and
// WebP are accepted regardless of the file extension.
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty %s image", path, format)
	}
	return img, nil
}

// SystemFontDirs are searched for a CJK-capable font when FontFile is absent.
var SystemFontDirs = []string{"/usr/share/fonts", "/usr/local/share/fonts"}

// cjkFontNames are lower-case file name fragments of common CJK fonts, most
// preferred first.
var cjkFontNames = []string{
	"notosanscjk",
	"notosanssc",
	"sourcehansans",
	"wqy-microhei",
	"wqy-zenhei",
	"droidsansfallback",
	"uming",
	"ukai",
}

// FindCJKFont returns the most preferred CJK font file below dirs, or "" if
// there is none. Ties go to the first file in walk order. Missing directories
// are ignored.
func FindCJKFont(dirs []string) string {
	best, bestRank := "", len(cjkFontNames)
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf", ".ttc", ".otc":
			default:
				return nil
			}
			name := strings.ToLower(d.Name())
			for rank, fragment := range cjkFontNames[:bestRank] {
				if strings.Contains(name, fragment) {
					best, bestRank = path, rank
					break
				}
			}
			return nil
		})
	}
	return best
}

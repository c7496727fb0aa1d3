package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/scoreboard/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontSet hands out faces of one typeface at any point size. Faces are
// created on first use and kept.
type FontSet struct {
	user    *opentype.Font
	builtin *truetype.Font
	faces   map[int]font.Face
	Logger  Logger
}

// LoadFontSet parses the font file at path. If the file is missing, a CJK
// font installed under assets.SystemFontDirs is tried, then the built-in font
// is used at the same sizes.
func LoadFontSet(path string, logger Logger) *FontSet {
	return loadFontSet(path, assets.SystemFontDirs, logger)
}

func loadFontSet(path string, systemDirs []string, logger Logger) *FontSet {
	set := DefaultFontSet()
	set.Logger = logger

	fnt, err := parseFontFile(path)
	if err == nil {
		set.user = fnt
		set.infof("loaded font %s", path)
		return set
	}
	set.infof("font %s unavailable: %v", path, err)

	if system := assets.FindCJKFont(systemDirs); system != "" {
		fnt, err := parseFontFile(system)
		if err == nil {
			set.user = fnt
			set.infof("loaded system font %s", system)
			return set
		}
		set.errorf("system font %s: %v", system, err)
	}
	set.infof("using built-in font")
	return set
}

// parseFontFile reads a single font or the first font of a collection.
func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fnt, err := opentype.Parse(data)
	if err == nil {
		return fnt, nil
	}
	collection, cerr := opentype.ParseCollection(data)
	if cerr != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return collection.Font(0)
}

// DefaultFontSet uses the built-in font only.
func DefaultFontSet() *FontSet {
	set := &FontSet{faces: make(map[int]font.Face)}
	if tt, err := truetype.Parse(assets.DefaultFontTTF); err == nil {
		set.builtin = tt
	}
	return set
}

// Face returns the face for size points, falling back from the user font to
// the built-in font and finally to basicfont.
func (set *FontSet) Face(size int) font.Face {
	if size <= 0 {
		size = DefaultTextSize
	}
	if face, ok := set.faces[size]; ok {
		return face
	}

	var face font.Face
	if set.user != nil {
		f, err := opentype.NewFace(set.user, &opentype.FaceOptions{Size: float64(size), DPI: FontDPI, Hinting: font.HintingFull})
		if err != nil {
			set.errorf("font face %dpt failed, using built-in font: %v", size, err)
		} else {
			face = f
		}
	}
	if face == nil && set.builtin != nil {
		face = truetype.NewFace(set.builtin, &truetype.Options{Size: float64(size), DPI: FontDPI, Hinting: font.HintingFull})
	}
	if face == nil {
		face = basicfont.Face7x13
	}
	set.faces[size] = face
	return face
}

func (set *FontSet) infof(format string, args ...interface{}) {
	if set.Logger != nil {
		set.Logger.Infof("fonts", format, args...)
	}
}

func (set *FontSet) errorf(format string, args ...interface{}) {
	if set.Logger != nil {
		set.Logger.Errorf("fonts", format, args...)
	}
}

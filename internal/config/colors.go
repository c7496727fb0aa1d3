package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rook-computer/scoreboard/internal/state"
	"gopkg.in/ini.v1"
)

const (
	// FileName is the color file inside the resource directory.
	FileName = "config.ini"

	colorsSection  = "Colors"
	componentUnset = 255
)

var componentSuffixes = [state.ComponentCount]string{"_r", "_g", "_b"}

var errNoColorsSection = errors.New("no Colors section")

// Keys are matched case-insensitively; lines that are neither a section, a
// comment nor a key/value pair are skipped.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:         true,
	SkipUnrecognizableLines: true,
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// ColorStore reads and writes the color table, an INI file with a single
// [Colors] section of `<element>_<r|g|b> = <int>` lines.
type ColorStore struct {
	Path   string
	Logger Logger
}

func NewColorStore(path string, logger Logger) *ColorStore {
	return &ColorStore{Path: path, Logger: logger}
}

// Load never fails. A missing file, a missing section or a file that does not
// parse yields DefaultColors; individual bad or missing values read as 255.
func (store *ColorStore) Load() state.ColorTable {
	data, err := os.ReadFile(store.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			store.errorf("read %s: %v", store.Path, err)
		}
		return state.DefaultColors()
	}
	table, err := DecodeColors(data)
	if err != nil {
		store.errorf("using default colors: %v", err)
		return state.DefaultColors()
	}
	return table
}

// Save overwrites the file with every entry of table.
func (store *ColorStore) Save(table state.ColorTable) error {
	data, err := EncodeColors(table)
	if err != nil {
		return err
	}
	if err := os.WriteFile(store.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", store.Path, err)
	}
	store.infof("colors saved to %s", store.Path)
	return nil
}

// DecodeColors parses the color file contents.
func DecodeColors(data []byte) (state.ColorTable, error) {
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("decode colors: %w", err)
	}
	if !file.HasSection(colorsSection) {
		return nil, errNoColorsSection
	}
	section := file.Section(colorsSection)

	table := make(state.ColorTable, len(state.ColorKeys))
	for _, key := range state.ColorKeys {
		var c state.RGB
		for i, suffix := range componentSuffixes {
			name := string(key) + suffix
			value := componentUnset
			if section.HasKey(name) {
				value = componentValue(section.Key(name).String())
			}
			c = c.WithComponent(i, value)
		}
		table[key] = c
	}
	return table, nil
}

// EncodeColors renders table in the file format read by DecodeColors.
func EncodeColors(table state.ColorTable) ([]byte, error) {
	file := ini.Empty()
	section, err := file.NewSection(colorsSection)
	if err != nil {
		return nil, fmt.Errorf("encode colors: %w", err)
	}
	for _, key := range state.ColorKeys {
		c := table.Get(key)
		for i, suffix := range componentSuffixes {
			if _, err := section.NewKey(string(key)+suffix, strconv.Itoa(int(c.Component(i)))); err != nil {
				return nil, fmt.Errorf("encode colors: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode colors: %w", err)
	}
	return buf.Bytes(), nil
}

// componentValue parses one integer component. Values out of int range
// saturate so they clamp to 0 or 255 like any other out-of-range value.
func componentValue(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return n
	}
	return componentUnset
}

func (store *ColorStore) infof(format string, args ...interface{}) {
	if store.Logger != nil {
		store.Logger.Infof("config", format, args...)
	}
}

func (store *ColorStore) errorf(format string, args ...interface{}) {
	if store.Logger != nil {
		store.Logger.Errorf("config", format, args...)
	}
}

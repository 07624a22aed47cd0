// Package format is the registry of known dat file formats.
//
// A Format selects the record-specific framing used around the generic
// property-tree grammar and records whether the file starts with a
// version header. Formats can be named explicitly or inferred from a
// file name with Infer.
package format

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

type Format int

const (
	Achievements Format = iota
	AchievementsModded
	ModSettings
	Script
)

var ErrUnknownFormat = errors.New("unknown format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"achievements":        Achievements,
		"achievements-modded": AchievementsModded,
		"mod-settings":        ModSettings,
		"script":              Script,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case Achievements:
		return []byte("achievements"), nil
	case AchievementsModded:
		return []byte("achievements-modded"), nil
	case ModSettings:
		return []byte("mod-settings"), nil
	case Script:
		return []byte("script"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// HasVersion reports whether files of this format start with a
// four component version header.
func (f Format) HasVersion() bool {
	switch f {
	case Achievements, AchievementsModded, ModSettings:
		return true
	default:
		return false
	}
}

// Infer maps a file name to its format by the <format>.dat naming
// convention of the engine's write directory. It fails with
// ErrUnknownFormat before any bytes are consumed.
func Infer(fileName string) (Format, error) {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	name, ok := strings.CutSuffix(base, ".dat")
	if !ok {
		return 0, fmt.Errorf("%w: no .dat suffix on %q", ErrUnknownFormat, fileName)
	}
	f, err := ParseFormat(name)
	if err != nil {
		return 0, fmt.Errorf("%w: file %q", ErrUnknownFormat, fileName)
	}
	return f, nil
}

// AllFormats returns all known formats.
func AllFormats() []Format {
	return []Format{Achievements, AchievementsModded, ModSettings, Script}
}

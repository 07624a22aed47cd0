package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q) error: %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v, want %v", f.String(), got, f)
		}
	}
	_, err := ParseFormat("level")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(level) error = %v, want ErrUnknownFormat", err)
	}
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected Format
		err      bool
	}{
		{"bare name", "script.dat", Script, false},
		{"unix path", "/saves/slot1/mod-settings.dat", ModSettings, false},
		{"windows path", `C:\Factorio\achievements.dat`, Achievements, false},
		{"modded", "achievements-modded.dat", AchievementsModded, false},
		{"no suffix", "script", 0, true},
		{"unknown stem", "level.dat", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.fileName)
			if tt.err {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("error = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Infer(%q) error: %v", tt.fileName, err)
			}
			if got != tt.expected {
				t.Errorf("Infer(%q) = %v, want %v", tt.fileName, got, tt.expected)
			}
		})
	}
}

func TestHasVersion(t *testing.T) {
	for _, f := range AllFormats() {
		want := f != Script
		if got := f.HasVersion(); got != want {
			t.Errorf("%v.HasVersion() = %v, want %v", f, got, want)
		}
	}
}

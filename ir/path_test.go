package ir

import (
	"testing"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		expected string
	}{
		{"empty", Path{}, ""},
		{"single field", Path{Field("a")}, "a"},
		{"nested fields", Path{Field("a"), Field("b")}, "a.b"},
		{"index", Path{Index(2)}, "[2]"},
		{"field then index", Path{Field("a"), Index(2)}, "a[2]"},
		{"index then field", Path{Index(0), Field("b")}, "[0].b"},
		{"mixed deep", Path{Field("a"), Field("b"), Index(2), Field("c")}, "a.b[2].c"},
		{"empty key", Path{Field("")}, `""`},
		{"dotted key", Path{Field("a.b")}, `"a.b"`},
		{"spaced key", Path{Field("iron plate")}, `"iron plate"`},
		{"control char key", Path{Field("a\x01b")}, `"a\x01b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPathChildCopies(t *testing.T) {
	base := Path{Field("a")}
	c1 := base.Child(Index(0))
	c2 := base.Child(Index(1))
	if c1.String() != "a[0]" {
		t.Errorf("c1 = %q, want a[0]", c1.String())
	}
	if c2.String() != "a[1]" {
		t.Errorf("c2 = %q, want a[1]", c2.String())
	}
}

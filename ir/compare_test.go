package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Nil < Bool < Number < String < List < Dict
		{"Nil < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromNumber(1), -1},
		{"Number < String", FromNumber(1), FromString("a"), -1},
		{"String < List", FromString("a"), FromSlice(nil), -1},
		{"List < Dict", FromSlice(nil), FromKeyVals(nil), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison
		{"Number < Number", FromNumber(1), FromNumber(2), -1},
		{"Number == Number", FromNumber(1.5), FromNumber(1.5), 0},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},

		// List Comparison
		{"Empty List == Empty List", FromSlice(nil), FromSlice(nil), 0},
		{"Short List < Long List", FromSlice([]*Node{FromNumber(1)}), FromSlice([]*Node{FromNumber(1), FromNumber(2)}), -1},
		{"List Element Comparison", FromSlice([]*Node{FromNumber(1)}), FromSlice([]*Node{FromNumber(2)}), -1},

		// Dict Comparison
		{"Empty Dict == Empty Dict", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Dict < Long Dict",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(1)}, {Key: "b", Val: FromNumber(2)}}),
			-1},
		{"Dict Key Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromNumber(1)}}),
			-1},
		{"Dict Value Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(2)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected bool
	}{
		{"nil == nil", nil, nil, true},
		{"nil != node", nil, Null(), false},
		{"Nil == Nil", Null(), Null(), true},
		{"type mismatch", FromBool(false), FromNumber(0), false},
		{"exact floats", FromNumber(0.1), FromNumber(0.1), true},
		{"near floats differ", FromNumber(0.1), FromNumber(0.1 + 1e-15), false},
		{"strings", FromString("abc"), FromString("abc"), true},
		{"list order matters",
			FromSlice([]*Node{FromNumber(1), FromNumber(2)}),
			FromSlice([]*Node{FromNumber(2), FromNumber(1)}),
			false},
		{"dict order ignored",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(1)}, {Key: "b", Val: FromNumber(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromNumber(2)}, {Key: "a", Val: FromNumber(1)}}),
			true},
		{"dict missing key",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromNumber(1)}}),
			false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, want %v", got, tt.expected)
			}
			if got := Equal(tt.b, tt.a); got != tt.expected {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.expected)
			}
		})
	}
}

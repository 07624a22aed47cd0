package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCloneIsDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromNumber(1)},
		{Key: "b", Val: FromSlice([]*Node{FromString("x"), Null()})},
	})
	cp := orig.Clone()
	if d := cmp.Diff(orig, cp); d != "" {
		t.Fatalf("clone differs from original (-orig +clone):\n%s", d)
	}
	cp.Values[1].Values[0].String = "y"
	if orig.Values[1].Values[0].String != "x" {
		t.Errorf("mutating the clone reached the original")
	}
	cp.Set("c", FromBool(true))
	if orig.Get("c") != nil {
		t.Errorf("Set on the clone reached the original")
	}
}

func TestGetSet(t *testing.T) {
	d := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromNumber(1)},
		{Key: "b", Val: FromNumber(2)},
	})
	if got := d.Get("a"); got == nil || got.Number != 1 {
		t.Errorf("Get(a) = %v, want 1", got)
	}
	if got := d.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if got := FromNumber(1).Get("a"); got != nil {
		t.Errorf("Get on a leaf = %v, want nil", got)
	}

	d.Set("a", FromNumber(10))
	if d.Len() != 2 {
		t.Errorf("Set of an existing key grew the dict to %d entries", d.Len())
	}
	if d.Keys[0] != "a" || d.Keys[1] != "b" {
		t.Errorf("Set of an existing key reordered keys: %v", d.Keys)
	}

	d.Set("c", FromNumber(3))
	if d.Len() != 3 || d.Keys[2] != "c" {
		t.Errorf("Set of a new key did not append: %v", d.Keys)
	}
}

func TestVisitOrder(t *testing.T) {
	root := FromSlice([]*Node{
		FromString("a"),
		FromSlice([]*Node{FromString("b")}),
	})
	var pre, post []Type
	err := root.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, y.Type)
		} else {
			pre = append(pre, y.Type)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := []Type{ListType, StringType, ListType, StringType}
	wantPost := []Type{StringType, StringType, ListType, ListType}
	if len(pre) != len(wantPre) {
		t.Fatalf("pre visits = %v, want %v", pre, wantPre)
	}
	for i := range pre {
		if pre[i] != wantPre[i] {
			t.Errorf("pre[%d] = %v, want %v", i, pre[i], wantPre[i])
		}
	}
	for i := range post {
		if post[i] != wantPost[i] {
			t.Errorf("post[%d] = %v, want %v", i, post[i], wantPost[i])
		}
	}
}

func TestVisitSkipsChildren(t *testing.T) {
	root := FromSlice([]*Node{FromString("a")})
	n := 0
	err := root.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("visited %d nodes, want 1", n)
	}
}

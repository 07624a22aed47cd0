package tagdiff

import (
	"bytes"
	"testing"
)

func TestTokenize(t *testing.T) {
	data := []byte("<surface index=1>\n<chunk x=0 y=0>tiles</chunk>\n</surface>")
	toks := Tokenize(data)

	type want struct {
		kind    TokenKind
		tag     string
		content string
	}
	wants := []want{
		{OpenTag, "surface", "<surface index=1>"},
		{Data, "", "\n"},
		{OpenTag, "chunk", "<chunk x=0 y=0>"},
		{Data, "", "tiles"},
		{CloseTag, "chunk", "</chunk>"},
		{Data, "", "\n"},
		{CloseTag, "surface", "</surface>"},
	}
	if len(toks) != len(wants) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wants))
	}
	for i, w := range wants {
		tok := toks[i]
		if tok.Kind != w.kind || tok.Tag != w.tag || string(tok.Content) != w.content {
			t.Errorf("token %d = {%v %q %q}, want {%v %q %q}",
				i, tok.Kind, tok.Tag, tok.Content, w.kind, w.tag, w.content)
		}
	}

	// parent chains
	if toks[0].Parent != nil {
		t.Errorf("surface open has a parent")
	}
	if toks[2].Parent != toks[0] {
		t.Errorf("chunk open not parented to surface")
	}
	if toks[3].Parent != toks[2] {
		t.Errorf("chunk data not parented to chunk")
	}
	if toks[4].Parent != toks[0] {
		t.Errorf("chunk close not parented to surface")
	}
	if toks[6].Parent != nil {
		t.Errorf("surface close has a parent")
	}

	// byte positions
	if toks[2].Pos != bytes.Index(data, []byte("<chunk")) {
		t.Errorf("chunk open pos = %d", toks[2].Pos)
	}
}

func TestTokenizeAttributeReference(t *testing.T) {
	// attribute values may contain <word> references
	data := []byte("<entity name=<LuaEntity> id=5>x</entity>")
	toks := Tokenize(data)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
	if toks[0].Kind != OpenTag || toks[0].Tag != "entity" {
		t.Errorf("token 0 = {%v %q}", toks[0].Kind, toks[0].Tag)
	}
	if string(toks[0].Content) != "<entity name=<LuaEntity> id=5>" {
		t.Errorf("open content = %q", toks[0].Content)
	}
}

func TestTokenizeUnmatchedClose(t *testing.T) {
	toks := Tokenize([]byte("<a>x</b>y</a>"))
	// </b> matches no open tag; following data stays inside <a>
	var y *Token
	for _, tok := range toks {
		if tok.Kind == Data && string(tok.Content) == "y" {
			y = tok
		}
	}
	if y == nil {
		t.Fatal("data token y not found")
	}
	if y.Parent == nil || y.Parent.Tag != "a" {
		t.Errorf("y parented to %+v, want <a>", y.Parent)
	}
}

func TestTokenPath(t *testing.T) {
	toks := Tokenize([]byte("<surface index=1><chunk x=0 y=0>tiles</chunk></surface>"))
	var data *Token
	for _, tok := range toks {
		if tok.Kind == Data {
			data = tok
		}
	}
	if data == nil {
		t.Fatal("data token not found")
	}
	want := "<surface index=1> pos=0\n  <chunk x=0 y=0> pos=17"
	if got := data.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestCollapse(t *testing.T) {
	toks := Collapse(Tokenize([]byte("<outer><leaf>data</leaf><empty></empty><open>rest</outer>")))

	type want struct {
		kind    TokenKind
		tag     string
		content string
	}
	wants := []want{
		{OpenTag, "outer", "<outer>"},
		{Collapsed, "leaf", "<leaf>data</leaf>"},
		{Collapsed, "empty", "<empty></empty>"},
		{OpenTag, "open", "<open>"},
		{Data, "", "rest"},
		{CloseTag, "outer", "</outer>"},
	}
	if len(toks) != len(wants) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wants))
	}
	for i, w := range wants {
		tok := toks[i]
		if tok.Kind != w.kind || tok.Tag != w.tag || string(tok.Content) != w.content {
			t.Errorf("token %d = {%v %q %q}, want {%v %q %q}",
				i, tok.Kind, tok.Tag, tok.Content, w.kind, w.tag, w.content)
		}
	}
	// collapsed leaves keep the enclosing parent
	if toks[1].Parent == nil || toks[1].Parent.Tag != "outer" {
		t.Errorf("collapsed leaf parented to %+v, want <outer>", toks[1].Parent)
	}
}

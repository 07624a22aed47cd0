package tagdiff

import (
	"bytes"

	"github.com/hornwitser/factorio-dat/debug"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type OpKind int

const (
	Delete OpKind = iota
	Insert
	Replace
)

func (k OpKind) String() string {
	switch k {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	default:
		return "<unknown op>"
	}
}

// Op is one run of differing tokens. Ref/Des are the joined raw
// contents of each side; RefPath/DesPath give the enclosing tag chain
// of the first differing token. Pos fields are -1 when a side is
// empty.
type Op struct {
	Kind    OpKind
	Ref     []byte
	Des     []byte
	RefPath string
	DesPath string
	RefPos  int
	DesPos  int
}

type Result struct {
	Ops []Op
}

func (r *Result) Empty() bool {
	return len(r.Ops) == 0
}

// Diff tokenizes two tagged dumps and compares them. A full sequence
// match over an entire level dump is too slow, so both streams are cut
// into top-level sections which are paired in order and diffed one by
// one. Two dumps are assumed to carry the same sections in the same
// order; trailing unpaired sections become whole-section ops.
func Diff(ref, des []byte) *Result {
	refChunks := chunks(Collapse(Tokenize(ref)))
	desChunks := chunks(Collapse(Tokenize(des)))
	if debug.TagDiff() {
		debug.Printf("tagdiff: %d/%d top-level sections", len(refChunks), len(desChunks))
	}
	res := &Result{}
	n := max(len(refChunks), len(desChunks))
	for i := 0; i < n; i++ {
		var rc, dc []*Token
		if i < len(refChunks) {
			rc = refChunks[i]
		}
		if i < len(desChunks) {
			dc = desChunks[i]
		}
		if equalChunks(rc, dc) {
			continue
		}
		diffChunk(rc, dc, res)
	}
	return res
}

// chunks splits a token stream at every token that sits at the top
// level and does not open a section.
func chunks(toks []*Token) [][]*Token {
	var res [][]*Token
	var cur []*Token
	for _, tok := range toks {
		cur = append(cur, tok)
		if tok.Parent == nil && tok.Kind != OpenTag {
			res = append(res, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

func equalChunks(a, b []*Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Tag != b[i].Tag ||
			!bytes.Equal(a[i].Content, b[i].Content) {
			return false
		}
	}
	return true
}

// diffChunk interns tokens as runes and runs a sequence diff over the
// two rune strings, then turns delete/insert runs back into token
// ranges. A delete immediately followed by an insert is reported as
// one replace.
func diffChunk(rc, dc []*Token, res *Result) {
	m := map[string]rune{}
	refRunes := internTokens(m, rc)
	desRunes := internTokens(m, dc)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(refRunes, desRunes, false)

	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			fi += n
			ti += n
		case diffpatch.DiffDelete:
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				in := len([]rune(diffs[i+1].Text))
				res.Ops = append(res.Ops, makeOp(Replace, rc[fi:fi+n], dc[ti:ti+in]))
				fi += n
				ti += in
				i++
				continue
			}
			res.Ops = append(res.Ops, makeOp(Delete, rc[fi:fi+n], nil))
			fi += n
		case diffpatch.DiffInsert:
			res.Ops = append(res.Ops, makeOp(Insert, nil, dc[ti:ti+n]))
			ti += n
		}
	}
}

func internTokens(m map[string]rune, toks []*Token) []rune {
	rs := make([]rune, len(toks))
	for i, tok := range toks {
		k := tok.key()
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}

func makeOp(kind OpKind, ref, des []*Token) Op {
	op := Op{Kind: kind, RefPos: -1, DesPos: -1}
	if len(ref) > 0 {
		op.Ref = joinContents(ref)
		op.RefPath = ref[0].Path()
		op.RefPos = ref[0].Pos
	}
	if len(des) > 0 {
		op.Des = joinContents(des)
		op.DesPath = des[0].Path()
		op.DesPos = des[0].Pos
	}
	return op
}

func joinContents(toks []*Token) []byte {
	var b bytes.Buffer
	for _, tok := range toks {
		b.Write(tok.Content)
	}
	return b.Bytes()
}

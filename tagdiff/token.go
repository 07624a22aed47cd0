// Package tagdiff compares the tagged text dumps the engine writes
// alongside a desync report (level-heuristic, level_with_tags). These
// files are not property trees; they are streams of nested
// <tag ...>data</tag> sections, compared here as token sequences.
package tagdiff

import (
	"fmt"
	"regexp"
	"strings"
)

type TokenKind int

const (
	OpenTag TokenKind = iota + 1
	CloseTag
	Data
	// Collapsed replaces an open tag, its data and its close tag with
	// one token, keeping leaf sections atomic in the sequence diff.
	Collapsed
)

// Token is one lexical unit of a tagged dump. Parent points at the
// enclosing open tag; Pos is the byte offset in the source. Neither
// takes part in token equality, which depends on Kind, Tag and
// Content only.
type Token struct {
	Kind    TokenKind
	Tag     string
	Content []byte
	Parent  *Token
	Pos     int
}

// key interns the equality-relevant part of a token for sequence
// diffing.
func (t *Token) key() string {
	return fmt.Sprintf("%d\x00%s\x00%s", t.Kind, t.Tag, t.Content)
}

// Path renders the chain of enclosing open tags, one per line with
// increasing indentation and the byte position of each ancestor.
func (t *Token) Path() string {
	var chain []*Token
	for p := t.Parent; p != nil; p = p.Parent {
		chain = append([]*Token{p}, chain...)
	}
	var b strings.Builder
	for i, ancestor := range chain {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s%s pos=%d", strings.Repeat("  ", i), ancestor.Content, ancestor.Pos)
	}
	return b.String()
}

// Tag names are lowercase words; attributes may follow an open tag
// name after a space and may themselves contain <word> references.
var tagRe = regexp.MustCompile(`<([a-z-]+)( [^<>\x00-\x1f]*(?:<[a-zA-Z]+>[^<>\x00-\x1f]*)*)?>|</([a-z-]+)>`)

// Tokenize splits a tagged dump into open/close/data tokens with
// parent chains. Unmatched close tags do not fail tokenization; the
// engine's dumps occasionally truncate sections.
func Tokenize(data []byte) []*Token {
	var res []*Token
	var parent *Token
	pos := 0
	for _, m := range tagRe.FindAllSubmatchIndex(data, -1) {
		if m[0] > pos {
			res = append(res, &Token{
				Kind:    Data,
				Content: data[pos:m[0]],
				Parent:  parent,
				Pos:     pos,
			})
		}
		tok := &Token{
			Content: data[m[0]:m[1]],
			Parent:  parent,
			Pos:     m[0],
		}
		if m[2] >= 0 {
			tok.Kind = OpenTag
			tok.Tag = string(data[m[2]:m[3]])
			res = append(res, tok)
			parent = tok
		} else {
			tok.Kind = CloseTag
			tok.Tag = string(data[m[6]:m[7]])
			// Pop to the matching open tag; skip the close entirely
			// in the parent chain when none matches.
			for p := parent; p != nil; p = p.Parent {
				if p.Tag == tok.Tag {
					tok.Parent = p.Parent
					parent = p.Parent
					break
				}
			}
			res = append(res, tok)
		}
		pos = m[1]
	}
	if pos < len(data) {
		res = append(res, &Token{
			Kind:    Data,
			Content: data[pos:],
			Parent:  parent,
			Pos:     pos,
		})
	}
	return res
}

// Collapse merges each <tag>data</tag> and <tag></tag> run into a
// single Collapsed token so that leaf sections diff as units.
func Collapse(toks []*Token) []*Token {
	res := make([]*Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		cur := toks[i]
		if cur.Kind == OpenTag && i+2 < len(toks) &&
			toks[i+1].Kind == Data &&
			toks[i+2].Kind == CloseTag &&
			toks[i+2].Tag == cur.Tag {
			content := make([]byte, 0, len(cur.Content)+len(toks[i+1].Content)+len(toks[i+2].Content))
			content = append(content, cur.Content...)
			content = append(content, toks[i+1].Content...)
			content = append(content, toks[i+2].Content...)
			res = append(res, &Token{
				Kind:    Collapsed,
				Tag:     cur.Tag,
				Content: content,
				Parent:  cur.Parent,
				Pos:     cur.Pos,
			})
			i += 2
			continue
		}
		if cur.Kind == OpenTag && i+1 < len(toks) &&
			toks[i+1].Kind == CloseTag &&
			toks[i+1].Tag == cur.Tag {
			content := make([]byte, 0, len(cur.Content)+len(toks[i+1].Content))
			content = append(content, cur.Content...)
			content = append(content, toks[i+1].Content...)
			res = append(res, &Token{
				Kind:    Collapsed,
				Tag:     cur.Tag,
				Content: content,
				Parent:  cur.Parent,
				Pos:     cur.Pos,
			})
			i++
			continue
		}
		res = append(res, cur)
	}
	return res
}

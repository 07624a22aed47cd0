// Package report drives the analysis of one desync report: it locates
// the reference and desynced captures of the three interesting files,
// decides which pairs differ at all, and produces a structural diff
// for script.dat and tagged-dump diffs for the level files.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hornwitser/factorio-dat/debug"
	"github.com/hornwitser/factorio-dat/diff"
	"github.com/hornwitser/factorio-dat/format"
	"github.com/hornwitser/factorio-dat/parse"
	"github.com/hornwitser/factorio-dat/tagdiff"

	"golang.org/x/sync/errgroup"
)

// Logical section names used in the analysis output.
const (
	ScriptSection        = "script.dat"
	HeuristicSection     = "level-heuristics"
	LevelWithTagsSection = "level_with_tags"
)

// Files points at the three interesting files of one extracted level
// capture.
type Files struct {
	Script        string
	Heuristic     string
	LevelWithTags string
}

var (
	heuristicRe     = regexp.MustCompile(`^level-heuristic-\d+$`)
	levelWithTagsRe = regexp.MustCompile(`^level_with_tags_tick_\d+\.dat$`)
)

// FindFiles locates the capture files under an extracted level
// directory.
func FindFiles(dir string) (*Files, error) {
	files := &Files{}
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := filepath.Base(p)
		switch {
		case base == "script.dat":
			files.Script = p
		case heuristicRe.MatchString(base):
			files.Heuristic = p
		case levelWithTagsRe.MatchString(base):
			files.LevelWithTags = p
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if files.Script == "" {
		return nil, fmt.Errorf("no script.dat under %s", dir)
	}
	return files, nil
}

// Section is the analysis result for one file pair. Exactly one of
// Diff and TagDiff is set when the pair differs; Err records a decode
// failure, in which case the whole section is failed rather than
// partially reported.
type Section struct {
	Name      string
	Identical bool
	Diff      *diff.Report
	TagDiff   *tagdiff.Result
	Err       error
}

// Analysis is the outcome of comparing one reference capture against
// one desynced capture.
type Analysis struct {
	Sections []Section
}

// Analyze compares the captures under refDir and desDir. The three
// pairs are independent and are analyzed concurrently; a failure in
// one section does not abort the others.
func Analyze(ctx context.Context, refDir, desDir string) (*Analysis, error) {
	ref, err := FindFiles(refDir)
	if err != nil {
		return nil, err
	}
	des, err := FindFiles(desDir)
	if err != nil {
		return nil, err
	}

	res := &Analysis{Sections: make([]Section, 0, 3)}
	sections := []struct {
		name     string
		ref, des string
		run      func(ref, des []byte, s *Section)
	}{
		{ScriptSection, ref.Script, des.Script, scriptSection},
		{HeuristicSection, ref.Heuristic, des.Heuristic, tagSection},
		{LevelWithTagsSection, ref.LevelWithTags, des.LevelWithTags, tagSection},
	}

	for _, sec := range sections {
		if sec.ref != "" && sec.des != "" {
			res.Sections = append(res.Sections, Section{Name: sec.name})
		}
	}
	g, _ := errgroup.WithContext(ctx)
	i := 0
	for _, sec := range sections {
		if sec.ref == "" || sec.des == "" {
			continue
		}
		s := &res.Sections[i]
		i++
		g.Go(func() error {
			analyzePair(sec.ref, sec.des, sec.run, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func analyzePair(refPath, desPath string, run func(ref, des []byte, s *Section), s *Section) {
	refData, err := os.ReadFile(refPath)
	if err != nil {
		s.Err = err
		return
	}
	desData, err := os.ReadFile(desPath)
	if err != nil {
		s.Err = err
		return
	}
	if bytes.Equal(refData, desData) {
		s.Identical = true
		return
	}
	if debug.Report() {
		debug.Printf("report: %s differs, %d/%d bytes", s.Name, len(refData), len(desData))
	}
	run(refData, desData, s)
}

func scriptSection(ref, des []byte, s *Section) {
	refDoc, err := parse.Parse(ref, parse.ParseFormat(format.Script))
	if err != nil {
		s.Err = fmt.Errorf("reference: %w", err)
		return
	}
	desDoc, err := parse.Parse(des, parse.ParseFormat(format.Script))
	if err != nil {
		s.Err = fmt.Errorf("desynced: %w", err)
		return
	}
	rep, err := diff.Diff(refDoc, desDoc)
	if err != nil {
		s.Err = err
		return
	}
	rep.File = s.Name
	s.Diff = rep
}

func tagSection(ref, des []byte, s *Section) {
	s.TagDiff = tagdiff.Diff(ref, des)
}

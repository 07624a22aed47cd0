// Package debug gates diagnostic output on FDAT_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Diff    bool
	TagDiff bool
	Report  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("FDAT_DEBUG_PARSE")
	d.Diff = boolEnv("FDAT_DEBUG_DIFF")
	d.TagDiff = boolEnv("FDAT_DEBUG_TAGDIFF")
	d.Report = boolEnv("FDAT_DEBUG_REPORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func TagDiff() bool {
	return d.TagDiff
}
func Report() bool {
	return d.Report
}

func Printf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}

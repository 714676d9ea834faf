// Package debug holds env-var gated debug switches, read once at
// startup: TP_DEBUG_DIFF, TP_DEBUG_RECON, TP_DEBUG_EXCLUDE.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff    bool
	Recon   bool
	Exclude bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("TP_DEBUG_DIFF")
	d.Recon = boolEnv("TP_DEBUG_RECON")
	d.Exclude = boolEnv("TP_DEBUG_EXCLUDE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Recon() bool {
	return d.Recon
}
func Exclude() bool {
	return d.Exclude
}

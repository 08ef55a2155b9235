package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval    bool
	Set     bool
	Upgrade bool
	Parse   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("BJ_DEBUG_EVAL")
	d.Set = boolEnv("BJ_DEBUG_SET")
	d.Upgrade = boolEnv("BJ_DEBUG_UPGRADE")
	d.Parse = boolEnv("BJ_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Set() bool {
	return d.Set
}
func Upgrade() bool {
	return d.Upgrade
}
func Parse() bool {
	return d.Parse
}

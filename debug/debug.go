package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Add  bool
	Find bool
	Plan bool
}

var d *debug

func init() {
	d = &debug{}
	d.Add = boolEnv("WBS_DEBUG_ADD")
	d.Find = boolEnv("WBS_DEBUG_FIND")
	d.Plan = boolEnv("WBS_DEBUG_PLAN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Add() bool {
	return d.Add
}
func Find() bool {
	return d.Find
}
func Plan() bool {
	return d.Plan
}

// SetAll overrides every flag, as when the command line asks for verbose
// output.
func SetAll(v bool) {
	d.Add = v
	d.Find = v
	d.Plan = v
}

package main

import (
	"fmt"
	"runtime/debug"
)

type VersionCmd struct {
	FullVersion bool `long:"full-version"`
}

var (
	version = "dev"
	commit  = "dummy_hash"
	date    = "dummy_date"
)

func (cmd *VersionCmd) Execute(args []string) error {
	if cmd.FullVersion {
		goversion := "unknown"
		if info, ok := debug.ReadBuildInfo(); ok {
			goversion = info.GoVersion
		}
		fmt.Println("ziptool", version, "hash", commit, "build", date, "go", goversion, "methods", CodecNames())
		return nil
	}
	fmt.Println("ziptool", version)
	return nil
}

package main

import (
	"strings"

	shell "github.com/codeskyblue/go-sh"
)

// runBuild runs the configured site generator command after a successful
// generation.
func runBuild(cfg BuildConfig) error {
	args := strings.Fields(cfg.Command)
	if len(args) == 0 {
		return configErrorf("build.command is not set")
	}

	sh := shell.NewSession()
	sh.SetDir(cfg.Dir)
	sh.ShowCMD = true

	cmdArgs := make([]interface{}, 0, len(args)-1)
	for _, a := range args[1:] {
		cmdArgs = append(cmdArgs, a)
	}
	return sh.Command(args[0], cmdArgs...).Run()
}

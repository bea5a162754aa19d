package main

import (
	"github.com/BerryBytes/aws-assume-role/cmd/root"
	errUtils "github.com/BerryBytes/aws-assume-role/errors"
	"github.com/charmbracelet/log"
)

func main() {
	cmd := root.NewRootCmd(root.DefaultDependencies())
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		errUtils.OsExit(errUtils.GetExitCode(err))
	}
}

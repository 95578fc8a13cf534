package main

import "github.com/dtroode/repairctl/cmd/repairctl/cmd"

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	cmd.SetBuildInfo(buildVersion, buildDate, buildCommit)
	cmd.Execute()
}

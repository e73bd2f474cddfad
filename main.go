package main

import "sonicmigrate/cmd"

// version is overridden at build time via
// -ldflags "-X main.version=v0.x.y".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}

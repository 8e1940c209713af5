package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/theakshaypant/refa/internal/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
}

// Command ggart renders the generative art collections.
package main

import (
	"os"

	"github.com/gogpu/ggart/cmd/ggart/commands"
	_ "github.com/gogpu/ggart/designs/all"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"github.com/clawdesk/clawconf/cmd"
)

func main() {
	cmd.Execute()
}

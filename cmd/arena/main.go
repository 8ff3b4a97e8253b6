package main

import (
	"github.com/mcoot/werewolf-arena/internal/cli"
)

func main() {
	cli.Execute()
}

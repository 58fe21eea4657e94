package main

import (
	"github.com/packwiz/athena/cmd"
)

func main() {
	cmd.Execute()
}

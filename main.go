package main

import (
	"os"

	"minsh.dev/minsh/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

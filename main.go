package main

import (
	"os"

	"github.com/thenoetrevino/notscrum/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package main

import (
	"os"

	"github.com/fredrick/golxc/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

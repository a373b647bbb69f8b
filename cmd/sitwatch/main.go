package main

import (
	"os"

	"github.com/stigoleg/sitwatch/internal/cmd"
)

const appVersion = "0.3.0"

func main() {
	os.Exit(cmd.Execute(appVersion))
}

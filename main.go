package main

import (
	"os"

	"lesiw.io/wowbox/hive"
)

func main() {
	os.Exit(hive.Command(os.Args...).Run())
}

package main

import (
	"github.com/mfeehan/vitals/cmd"
)

func main() {
	cmd.Execute()
}

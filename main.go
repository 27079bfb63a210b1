package main

import (
	"github.com/Cierra-Runis/relocate/cmd"
)

func main() {
	cmd.Execute()
}

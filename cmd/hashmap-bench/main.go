package main

import (
	"github.com/amgfrthsp/HSE.HashMap/cmd/hashmap-bench/cmd"
)

func main() {
	cmd.Execute()
}

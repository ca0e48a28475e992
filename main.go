package main

import (
	"github.com/dszqbsm/evocrawler/cmd"
)

func main() {
	cmd.Execute()
}

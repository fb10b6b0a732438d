package main

import "github.com/dgallion1/summarise/internal/cli"

func main() {
	cli.Execute()
}

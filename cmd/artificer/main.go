package main

import "artificer/internal/cli"

func main() {
	cli.Execute()
}

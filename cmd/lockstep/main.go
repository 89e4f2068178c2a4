package main

import "lockstep/internal/cli"

func main() {
	cli.Execute()
}

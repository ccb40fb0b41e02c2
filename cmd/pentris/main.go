package main

import "github.com/tursodatabase/pentris/internal/cmd"

func main() {
	cmd.Execute()
}

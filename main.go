package main

import "scribe/internal/cmd"

func main() {
	cmd.Execute()
}

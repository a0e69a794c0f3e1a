package main

import "github.com/moyu-x/akovian-organizer/cmd"

func main() {
	cmd.Execute()
}

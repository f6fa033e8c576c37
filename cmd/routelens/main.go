package main

import "github.com/routelens/routelens/cmd/routelens/commands"

func main() {
	commands.Execute()
}

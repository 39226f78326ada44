package main

import "github.com/seventv/hashparse/cmd"

func main() {
	cmd.Execute()
}

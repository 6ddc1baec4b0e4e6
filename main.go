package main

import "github.com/hintermann/knock/cmd"

func main() {
	cmd.Execute()
}

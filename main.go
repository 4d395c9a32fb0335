package main

import "github.com/civilforge/is456beam/cmd"

func main() {
	cmd.Execute()
}

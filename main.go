package main

import "regctl/cmd"

func main() {
	cmd.Execute()
}

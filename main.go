package main

import "ainexus/server/cmd"

func main() {
	cmd.Execute()
}

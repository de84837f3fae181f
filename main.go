package main

import "refbook/cmd"

func main() {
	cmd.Execute()
}

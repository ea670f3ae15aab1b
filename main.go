package main

import "spendwise/cmd"

func main() {
	cmd.Execute()
}

package main

import "btc-energy-value/cmd/cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/josephlewis42/coin/cmd"

func main() {
	cmd.Execute()
}

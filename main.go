package main

import "github.com/user/secgate/cmd"

func main() {
	cmd.Execute()
}

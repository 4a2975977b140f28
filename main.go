package main

import "github.com/teamkeel/graphgate/cmd"

func main() {
	cmd.Execute()
}

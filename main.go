package main

import "gcalutil/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/timvw/screen-array/cmd"

func main() {
	cmd.Execute()
}

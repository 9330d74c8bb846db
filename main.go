package main

import "github.com/inovacc/hxcm/cmd"

func main() {
	cmd.Execute()
}

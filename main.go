package main

import "github.com/kommit/kommit/cmd"

func main() {
	cmd.Execute()
}

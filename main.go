package main

import "github.com/koki-develop/textinator/cmd"

func main() {
	cmd.Execute()
}

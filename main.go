package main

import "github.com/kosearch/subcollect/cmd"

func main() {
	cmd.Execute()
}

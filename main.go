package main

import "github.com/gaurav-prasanna/lessonmd/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/mkellner/spmirror/internal/cli"

func main() {
	cli.Execute()
}

// Package main runs the llcsim command line tool.
package main

import "github.com/sarchlab/llcrepl/llcsim/cmd"

func main() {
	cmd.Execute()
}

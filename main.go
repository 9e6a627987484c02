package main

import "github.com/theirongolddev/capitalflow/cmd"

func main() {
	cmd.Execute()
}

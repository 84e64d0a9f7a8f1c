package main

import "pagedlist.dev/listdiff/cli/cmd"

func main() {
	cmd.Execute()
}

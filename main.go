package main

import "github.com/beadworks/strand/cmd"

func main() {
	cmd.Execute()
}

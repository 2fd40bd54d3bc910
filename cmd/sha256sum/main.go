package main

import "massnet.org/sha256sum/cmd/sha256sum/cmd"

func main() {
	cmd.Execute()
}

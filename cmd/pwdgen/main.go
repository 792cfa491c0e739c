package main

import "github.com/assetnote/pwdgen/cmd/pwdgen/cmd"

func main() {
	cmd.Execute()
}

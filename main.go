package main

import "github.com/askpdf/askpdf-cli/cmd"

func main() {
	cmd.Execute()
}

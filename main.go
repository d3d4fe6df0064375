package main

import "github.com/jdhalbert/tomodoro/cmd"

func main() {
	cmd.Execute()
}

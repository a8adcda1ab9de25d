package main

import "github.com/tripbudget/backend/cmd"

func main() {
	cmd.Execute()
}

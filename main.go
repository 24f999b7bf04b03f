package main

import "github.com/ZacxDev/blogsite/cmd"

func main() {
	cmd.Execute()
}

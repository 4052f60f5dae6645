package main

import "github.com/annazecevic/band-service/cmd"

func main() {
	cmd.Execute()
}

package main

import "booking-api/cmd"

func main() {
	cmd.Execute()
}

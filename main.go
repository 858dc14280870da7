package main

import "github.com/KaramelBytes/medalreport/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"fmt"
	"os"
)

func main() {
	app := initializeApp()
	if err := app.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

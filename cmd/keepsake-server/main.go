package main

import (
	"os"

	"github.com/keepsakehq/keepsake/server/keepsakeservice"
)

func main() {
	if err := keepsakeservice.Run(); err != nil {
		os.Exit(1)
	}
}

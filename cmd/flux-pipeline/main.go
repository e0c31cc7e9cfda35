package main

import (
	"os"

	_ "github.com/youwol/flux-core/pipeline/fluxcore"
)

func main() {
	os.Exit(int(Run()))
}

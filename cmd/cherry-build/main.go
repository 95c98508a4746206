package main

import "github.com/cherry-lang/cherrybuild/cmd/cherry-build/internal"

func main() {
	internal.Execute()
}

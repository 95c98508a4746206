package main

import "github.com/cherry-lang/cherrybuild/cmd/cherry/internal"

func main() {
	internal.Execute()
}

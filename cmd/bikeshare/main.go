// Command bikeshare explores US bike share trip data.
package main

import "github.com/nao1215/bikeshare/internal/cli"

func main() {
	cli.Execute()
}

// Command matte adds configurable white borders to every image in a folder,
// scaling each source onto a fixed-size white canvas.
package main

import "github.com/andresmejia3/matte/cmd"

func main() {
	cmd.Execute()
}

// Command pyinstall installs a Python runtime through the system package manager.
package main

import "github.com/edespino/pyinstall/cmd"

func main() {
	cmd.Execute()
}

// Command mits-validate validates MITS 5.0 fee documents.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(2)
	}
}

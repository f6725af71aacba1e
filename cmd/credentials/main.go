// Command credentials resolves secrets the way an application using the
// credentials package would, for scripts and for debugging a Secretfile.
//
//	credentials get DB_USER DB_PASSWORD
//	credentials file TLS_KEY /run/secrets/tls.key
//	credentials check
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	root := newRootCommand(&cliConfig{})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

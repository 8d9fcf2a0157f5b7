// main is the entry point for the datascope CLI.
package main

import (
	"fmt"
	"os"

	"github.com/datascope/datascope/cmd"
	"github.com/datascope/datascope/internal/runstore"
)

func main() {
	// Wire the global run store manager into the command layer. The store
	// itself is opened lazily by each command's setup once the backend
	// configuration is known.
	cmd.SetRunStoreManager(runstore.Manager)
	defer runstore.CloseStore()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

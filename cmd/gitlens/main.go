// Command gitlens is a thin CLI exercising the repo façade: the query
// API's nearest external collaborator, per spec §1 ("the HTTP transport
// surface... are external collaborators with narrow interfaces").
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

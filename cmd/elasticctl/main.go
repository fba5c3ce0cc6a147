// Command elasticctl quotes swaps and liquidity operations against
// caller-supplied reserves, without needing a live RPC endpoint. It is a
// second consumer of pkg/elasticmath, independent of the HTTP wrapper in
// cmd/api.
package main

import (
	"fmt"
	"os"

	"github.com/ElasticSwap/elasticswap-sdk/cmd/elasticctl/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command greedyroute computes and compares vehicle routes over road networks.
//
//	greedyroute route --graph city.json --from 101 --to 245
//	greedyroute serve --config greedyroute.yaml
//	greedyroute demo --rows 8 --cols 8
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

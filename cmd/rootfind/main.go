// SPDX-License-Identifier: MIT

// Command rootfind locates zeros of real polynomials from the command line.
//
// Usage:
//
//	rootfind solve  --coeffs "-3,5,2" --min 0 --max 2
//	rootfind roots  --coeffs "4,0,1,4,0,1" --initial 0
//	rootfind scan   --coeffs "-12,-1,1,-12,-1,1" --min -10 --max 10 --parts 64
//	rootfind bracket --coeffs "-1,4" --initial 5 --min -100 --max 100
//	rootfind plot   --coeffs "-3,5,2" --min -4 --max 2 --out poly.png
//	rootfind config
//
// Coefficients are listed in ascending degree order (constant term first).
// Settings come from --config (YAML), ROOTFIND_* environment variables and
// flags, in increasing priority.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

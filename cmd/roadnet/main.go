// Command roadnet loads a road network from CSV and answers shortest-route
// queries around blocked roads.
//
//	roadnet route --csv roads.csv --from x --to z --block x:y
//	roadnet edges --csv roads.csv
//	roadnet dot   --csv roads.csv --from x --to z --out roads.dot
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

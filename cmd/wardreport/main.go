// Command wardreport derives ward insights from a JSON or YAML ward file
// without running the service.
//
// Usage:
//
//	wardreport citizen --file data/mock/wards.json --ward W03
//	wardreport monitor --file data/mock/wards.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Command pcomb is a small demo front-end over the pcomb library,
// analogous to the teacher's own cmd/langlang: it parses a string
// with one of the example grammars and prints the result, or (with
// the trace subcommand) a captured execution trace.
package main

import "github.com/clarete/pcomb/cmd/pcomb/cmd"

func main() {
	cmd.Execute()
}

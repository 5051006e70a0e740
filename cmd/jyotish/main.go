// Package main is the jyotish command line tool. It reads natal charts from
// files, runs the aspect and yoga engines and writes JSON or msgpack results.
//
// Charts come from an external position service; this tool only handles the
// file formats around the pure analysis core.
package main

func main() {
	Execute()
}

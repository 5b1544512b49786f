// gridpath is a CLI for running grid searches over terrain maps.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "find", "path":
		err = cmdFind(args)
	case "compare", "cmp":
		err = cmdCompare(args)
	case "info":
		err = cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gridpath - weighted grid pathfinding

Usage:
  gridpath <command> [options] [map file]

Commands:
  find     Run one search and draw the result
  compare  Run every strategy on the same endpoints
  info     Show map dimensions and terrain counts

Options:
  -config FILE          YAML config file
  -map FILE             Map file (.txt, .yaml or .gat)
  -strategy NAME        bfs, dijkstra, greedy, astar
  -heuristic NAME       diagonal, manhattan, euclidean, chebyshev
  -max-iterations N     Iteration safety cap
  -decrease-key         Reposition open nodes whose cost improves
  -start X,Y            Start cell (defaults to the map's S marker)
  -target X,Y           Target cell (defaults to the map's T marker)
  -debug                Enable debug logging
  -log-file FILE        Write logs to a rotating file

Examples:
  gridpath find -strategy dijkstra maps/forest.txt
  gridpath find -start 0,0 -target 9,9 -heuristic euclidean maps/forest.txt
  gridpath compare maps/forest.yaml
  gridpath info maps/forest.txt`)
}

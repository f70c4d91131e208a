// Command calc is a command-line client for a calcd instance.
package main

import (
	"fmt"
	"os"
)

// getServerAddr returns the calcd address from env var or default.
func getServerAddr() string {
	if addr := os.Getenv("CALCD_ADDR"); addr != "" {
		return addr
	}
	return "127.0.0.1:50055"
}

// getToken returns the API token from the environment, if any.
func getToken() string {
	return os.Getenv("CALCD_TOKEN")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "add":
		err = binaryCommand(args, "add")
	case "sub":
		err = binaryCommand(args, "sub")
	case "mul":
		err = binaryCommand(args, "mul")
	case "div":
		err = binaryCommand(args, "div")
	case "prime":
		err = primeCommand(args)
	case "fact":
		err = factCommand(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`calc - command-line client for calcd

Usage:
  calc <command> [arguments]

Commands:
  add <a> <b>    Print a+b
  sub <a> <b>    Print a-b
  mul <a> <b>    Print a*b
  div <a> <b>    Print a/b (truncated toward zero; b must not be 0)
  prime <n>      Print whether n is prime
  fact <n>       Print n! (n must not be negative)
  help           Show this help

Environment:
  CALCD_ADDR     calcd address (default 127.0.0.1:50055)
  CALCD_TOKEN    API token sent with each request`)
}

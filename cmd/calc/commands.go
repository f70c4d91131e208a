package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/calclab/intcalc/pkg/client"
)

const requestTimeout = 10 * time.Second

// dial connects to calcd using the environment settings.
func dial() (*client.Client, error) {
	return client.New(getServerAddr(), client.Options{Token: getToken()})
}

// parseInt32 parses a decimal command-line operand.
func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a 32-bit integer: %s", s)
	}
	return int32(v), nil
}

// binaryCommand handles the two-operand arithmetic commands.
func binaryCommand(args []string, op string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: calc %s <a> <b>", op)
	}
	a, err := parseInt32(args[0])
	if err != nil {
		return err
	}
	b, err := parseInt32(args[1])
	if err != nil {
		return err
	}

	c, err := dial()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var result int32
	switch op {
	case "add":
		result, err = c.Add(ctx, a, b)
	case "sub":
		result, err = c.Subtract(ctx, a, b)
	case "mul":
		result, err = c.Multiply(ctx, a, b)
	case "div":
		result, err = c.Divide(ctx, a, b)
	}
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}

// primeCommand handles the prime command.
func primeCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: calc prime <n>")
	}
	n, err := parseInt32(args[0])
	if err != nil {
		return err
	}

	c, err := dial()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	prime, err := c.IsPrime(ctx, n)
	if err != nil {
		return err
	}

	if prime {
		fmt.Printf("%d is prime\n", n)
	} else {
		fmt.Printf("%d is not prime\n", n)
	}
	return nil
}

// factCommand handles the fact command.
func factCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: calc fact <n>")
	}
	n, err := parseInt32(args[0])
	if err != nil {
		return err
	}

	c, err := dial()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := c.Factorial(ctx, n)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}

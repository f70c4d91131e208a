// Package client provides a typed client for the Calc service.
package client

import (
	"context"
	"fmt"

	"github.com/golang/glog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/calclab/intcalc/pkg/server/auth"
	calcv1 "github.com/calclab/intcalc/proto/calc/v1"
)

// Options controls how the client connects.
type Options struct {
	// Token, when set, is attached to every call as API-token metadata.
	Token string

	// CACert is a PEM file used to verify the server certificate.
	// When empty the connection is plaintext.
	CACert string
}

// Client wraps the generated Calc client with token handling.
type Client struct {
	conn  *grpc.ClientConn
	calc  calcv1.CalcClient
	token string
}

// New connects to a calcd instance at addr.
func New(addr string, opts Options) (*Client, error) {
	creds := insecure.NewCredentials()
	if opts.CACert != "" {
		tlsCreds, err := credentials.NewClientTLSFromFile(opts.CACert, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load CA certificate: %w", err)
		}
		creds = tlsCreds
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	glog.V(1).Infof("Connected to calcd at %s", addr)
	return &Client{
		conn:  conn,
		calc:  calcv1.NewCalcClient(conn),
		token: opts.Token,
	}, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// withToken attaches the API token to the outgoing metadata, if one is
// configured.
func (c *Client) withToken(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, auth.TokenHeader, c.token)
}

// Add returns a+b.
func (c *Client) Add(ctx context.Context, a, b int32) (int32, error) {
	resp, err := c.calc.Add(c.withToken(ctx), &calcv1.BinaryOpRequest{A: a, B: b})
	if err != nil {
		return 0, err
	}
	return resp.GetResult(), nil
}

// Subtract returns a-b.
func (c *Client) Subtract(ctx context.Context, a, b int32) (int32, error) {
	resp, err := c.calc.Subtract(c.withToken(ctx), &calcv1.BinaryOpRequest{A: a, B: b})
	if err != nil {
		return 0, err
	}
	return resp.GetResult(), nil
}

// Multiply returns a*b.
func (c *Client) Multiply(ctx context.Context, a, b int32) (int32, error) {
	resp, err := c.calc.Multiply(c.withToken(ctx), &calcv1.BinaryOpRequest{A: a, B: b})
	if err != nil {
		return 0, err
	}
	return resp.GetResult(), nil
}

// Divide returns a/b truncated toward zero.
func (c *Client) Divide(ctx context.Context, a, b int32) (int32, error) {
	resp, err := c.calc.Divide(c.withToken(ctx), &calcv1.BinaryOpRequest{A: a, B: b})
	if err != nil {
		return 0, err
	}
	return resp.GetResult(), nil
}

// IsPrime reports whether n is prime.
func (c *Client) IsPrime(ctx context.Context, n int32) (bool, error) {
	resp, err := c.calc.IsPrime(c.withToken(ctx), &calcv1.IsPrimeRequest{N: n})
	if err != nil {
		return false, err
	}
	return resp.GetPrime(), nil
}

// Factorial returns n!.
func (c *Client) Factorial(ctx context.Context, n int32) (int64, error) {
	resp, err := c.calc.Factorial(c.withToken(ctx), &calcv1.FactorialRequest{N: n})
	if err != nil {
		return 0, err
	}
	return resp.GetResult(), nil
}

// Command calcd serves the Calc gRPC service.
package main

import (
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/calclab/intcalc/internal/config"
	"github.com/calclab/intcalc/pkg/server"
	"github.com/calclab/intcalc/pkg/server/auth"
)

var (
	configFile = flag.String("config", "", "Path to the YAML configuration file")
	addr       = flag.String("addr", "", "Listen address; overrides the config file")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			glog.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	var authorizer auth.Authorizer
	if cfg.Auth.Enabled {
		tokenAuth := auth.NewTokenAuthorizer()
		for _, tok := range cfg.Auth.Tokens {
			tokenAuth.AddToken(tok.Token, tok.Roles)
		}
		authorizer = tokenAuth
		glog.V(1).Infof("Token authorization enabled with %d tokens", len(cfg.Auth.Tokens))
	}

	srv, err := server.New(server.Options{
		CertFile:   cfg.TLS.CertFile,
		KeyFile:    cfg.TLS.KeyFile,
		Authorizer: authorizer,
	})
	if err != nil {
		glog.Fatalf("Failed to create server: %v", err)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		glog.Fatalf("Failed to listen on %s: %v", cfg.Addr, err)
	}

	// Stop accepting new RPCs and drain in-flight ones on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		glog.Infof("Received %v, shutting down", sig)
		srv.GracefulStop()
	}()

	glog.Infof("calcd listening on %s", lis.Addr())
	if err := srv.Serve(lis); err != nil {
		glog.Fatalf("Server error: %v", err)
	}
}

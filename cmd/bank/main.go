package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/atm-bank/internal/bank/bootstrap"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
)

const (
	networkProtocol = "tcp"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	cfg, err := bootstrap.LoadConfig(os.Args[1:])
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	lis, err := net.Listen(networkProtocol, cfg.ListenAddr)
	if err != nil {
		defaultLogger.Error("failed to listen", "addr", cfg.ListenAddr, "error", err.Error())
		os.Exit(1)
	}
	defer lis.Close()

	app := bootstrap.NewBankApp(cfg, defaultLogger)

	err = app.Run(mainCtx, lis)
	app.Shutdown()

	if err != nil {
		defaultLogger.Error("bank server failed", "error", err.Error())
		os.Exit(1)
	}
}

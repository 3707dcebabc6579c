package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/atm-bank/internal/bank/client"
	"github.com/Lexv0lk/atm-bank/internal/bank/infrastructure/cipher"
	"github.com/ilyakaznacheev/cleanenv"
)

type atmConfig struct {
	ServerAddr     string `env:"ATM_SERVER_ADDR" env-default:"localhost:3000"`
	PrivateKeyPath string `env:"BANK_PRIVATE_KEY" env-default:"keys/private.pem"`
	PublicKeyPath  string `env:"BANK_PUBLIC_KEY" env-default:"keys/public.pem"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg atmConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "couldn't read environment variables: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "address of the bank server")
	flag.Parse()

	privateKey, publicKey, err := cipher.LoadOrGenerateKeys(cipher.KeyPaths{
		PrivateKey: cfg.PrivateKeyPath,
		PublicKey:  cfg.PublicKeyPath,
	}, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load keys: %v\n", err)
		os.Exit(1)
	}

	c, err := client.Dial(ctx, cfg.ServerAddr, cipher.NewRSACipher(privateKey, publicKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Println("Connected to the server!")

	if err := client.NewMenu(c, os.Stdin, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "connection lost: %v\n", err)
		os.Exit(1)
	}
}

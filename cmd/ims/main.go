package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cliApp := &cli.App{
		Name:  "ims",
		Usage: "IMS data access: schema, seed data and operator lookups",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file loaded before the process environment",
			},
		},
		Commands: commands(logger),
	}

	if err = cliApp.Run(os.Args); err != nil {
		logger.Error("ims stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

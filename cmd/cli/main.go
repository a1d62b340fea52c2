package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/timecapsule/internal/buildinfo"
	"github.com/dmitrijs2005/timecapsule/internal/cli"
	"github.com/dmitrijs2005/timecapsule/internal/config"
	"github.com/dmitrijs2005/timecapsule/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}

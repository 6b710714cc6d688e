package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/starsbot/internal/app"
	"github.com/GlebRadaev/starsbot/pkg/auth"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			StarsBot admin API
//	@version		1.0
//	@description	Read-only admin API of the stars rewards bot

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:10000
// @BasePath	/
func main() {
	// starsbot hash <password> prints a value for ADMIN_PASSWORD_HASH
	if len(os.Args) == 3 && os.Args[1] == "hash" {
		hash, err := (&auth.HashService{}).HashPassword(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("Can't hash password")
		}
		fmt.Println(hash)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/erp-integration/internal/config"
	"github.com/umalmyha/erp-integration/internal/infra"
	"go.mongodb.org/mongo-driver/mongo"
)

const DefaultShutdownTimeout = 10 * time.Second
const DefaultDatabaseConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	client, err := connectToMongodb(cfg.MongoCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer disconnectFromMongodb(client)

	app, err := infra.Router(client, cfg.MongoCfg)
	if err != nil {
		logrus.Fatal(err)
	}

	start(app, cfg.ServerCfg.Port)
}

func connectToMongodb(cfg config.MongoCfg) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultDatabaseConnectTimeout)
	defer cancel()

	client, err := infra.Mongodb(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to mongodb - %w", err)
	}

	logrus.Info("connected to mongodb")
	return client, nil
}

func disconnectFromMongodb(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultDatabaseConnectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logrus.Errorf("failed to disconnect from mongodb - %v", err)
		return
	}
	logrus.Info("disconnected from mongodb")
}

func start(app *echo.Echo, port int) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		app.Logger.Infof("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			app.Logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}

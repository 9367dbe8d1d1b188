package main

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/mixparty/backend/internal/client"
	"github.com/mixparty/backend/internal/controller"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/repository"
	"github.com/mixparty/backend/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := dto.LoadConfig()
	if err != nil {
		logrus.Panic(err)
	}

	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logrus.Panic(err)
	}

	repositories := repository.NewRepositories(db)
	clients := client.NewClients(config)
	services := service.NewServices(repositories, config, clients)
	controllers := controller.NewControllers(services, config)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	controllers.Route(e)

	logrus.Infof("Starting server on port %s", config.Port)
	if err := e.Start(":" + config.Port); err != nil {
		logrus.Panic(err)
	}
}

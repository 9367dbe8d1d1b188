package client

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/mixparty/backend/internal/dto"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type Clients interface {
	AuthClient() AuthClient
	RabbitMQClient() RabbitClient
	SpotifyClient() SpotifyClient
	SonglinkClient() SonglinkClient
}

type clients struct {
	authClient     AuthClient
	rabbitClient   RabbitClient
	spotifyClient  SpotifyClient
	songlinkClient SonglinkClient
}

func (c clients) AuthClient() AuthClient {
	return c.authClient
}

func (c clients) RabbitMQClient() RabbitClient {
	return c.rabbitClient
}

func (c clients) SpotifyClient() SpotifyClient {
	return c.spotifyClient
}

func (c clients) SonglinkClient() SonglinkClient {
	return c.songlinkClient
}

func NewClients(cfg dto.Config) Clients {
	decodedFirebaseKey, err := cfg.DecodeFirebaseKey()
	if err != nil {
		logrus.Panic(err)
	}
	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsJSON(decodedFirebaseKey))
	if err != nil {
		logrus.Panic(err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logrus.Panic(err)
	}

	rabbitClient, err := NewRabbitMQClient(cfg)
	if err != nil {
		// The broker is optional: without it domain events are dropped
		// but the API stays up.
		logrus.Errorf("Failed to connect to RabbitMQ, events will not be published: %v", err)
		rabbitClient = noopRabbitClient{}
	}

	return &clients{
		authClient:     authClient,
		rabbitClient:   rabbitClient,
		spotifyClient:  NewSpotifyClient(cfg),
		songlinkClient: NewSonglinkClient(),
	}
}

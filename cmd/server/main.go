package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marquee-labs/marquee/internal/db"
	"github.com/marquee-labs/marquee/internal/http/middleware"
	redisclient "github.com/marquee-labs/marquee/internal/redis"
)

func main() {
	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)

	if env.RedisAddress != "" {
		redisclient.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	// the MQTT notifier is optional; displays still poll without it
	if env.MQTTBrokerURL != "" {
		middleware.SetBrokerURL(env.MQTTBrokerURL)
	}
	if err := middleware.InitMQTT("marquee-server"); err != nil {
		log.Error().Err(err).Msg("mqtt unavailable, displays will rely on polling alone")
	}

	r := gin.Default()
	RegisterRoutes(r, env, store)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

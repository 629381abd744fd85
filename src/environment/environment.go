package environment

import (
	"runtime"

	pulsarClient "github.com/apache/pulsar-client-go/pulsar"
	envLoader "github.com/caarlos0/env/v10"
	"github.com/mmfl-dev/admin-api/src/logger"
	"github.com/rs/zerolog/log"
)

var (
	env *Environment
)

// Environment holds all the environment variables
type Environment struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	WorkerCount int    `env:"WORKER_COUNT" envDefault:"0"`

	MongoDbURI string `env:"MONGODB_URI,required"`
	JWTSecret  string `env:"JWT_SECRET,required"`

	// Inactive extension point: possession of a valid credential is enough
	// unless this is switched on.
	RequireAdminClaim bool `env:"REQUIRE_ADMIN_CLAIM" envDefault:"false"`

	// Whether news creation checks the allocated identifier for collisions
	// the way match creation always does. Off for parity with the panel's
	// historical behavior.
	NewsIDConflictCheck bool `env:"NEWS_ID_CONFLICT_CHECK" envDefault:"false"`

	PulsarURL       string `env:"PULSAR_URL"`
	PulsarAuthToken string `env:"PULSAR_AUTH_TOKEN"`
	PulsarBaseTopic string `env:"PULSAR_BASE_TOPIC" envDefault:"mmfl.content.changes"`

	PulsarAuth pulsarClient.Authentication
}

// load initializes the environment variables
func load() *Environment {
	e := Environment{}
	if err := envLoader.Parse(&e); err != nil {
		log.Panic().Err(err)
	}

	if err := logger.SetLogLevel(e.LogLevel); err != nil {
		log.Panic().Err(err)
	}

	if e.WorkerCount <= 0 {
		e.WorkerCount = runtime.NumCPU() + e.WorkerCount
	}

	if e.PulsarAuthToken != "" {
		e.PulsarAuth = pulsarClient.NewAuthenticationToken(e.PulsarAuthToken)
	}

	log.Info().Interface("environment", e).Msgf("Loaded Environment")

	return &e
}

func Get() *Environment {
	if env == nil {
		env = load()
	}

	return env
}

// Package config loads the service configuration from environment
// variables and validates it before anything is wired.
package config

import (
	"github.com/flarebot/saleswatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Hyperspace holds the credentials and endpoint of the sales feed API.
type Hyperspace struct {
	Endpoint string `envconfig:"HYPERSPACE_ENDPOINT" default:"https://beta.api.solanalysis.com/graphql" validate:"required,url"`
	APIKey   string `envconfig:"HYPERSPACE_API_KEY" validate:"required"`
}

// Twitter holds the OAuth1 key material and account identity of the bot.
type Twitter struct {
	ConsumerKey    string `envconfig:"TWITTER_CONSUMER_KEY" validate:"required"`
	ConsumerSecret string `envconfig:"TWITTER_CONSUMER_SECRET" validate:"required"`
	AccessToken    string `envconfig:"TWITTER_ACCESS_TOKEN" validate:"required"`
	AccessSecret   string `envconfig:"TWITTER_ACCESS_SECRET" validate:"required"`
	AccountHandle  string `envconfig:"TWITTER_ACCOUNT_HANDLE" validate:"required"`
}

// Redis optionally enables the persisted watermark cursor. An empty Addr
// leaves the source-faithful read-back strategy in place.
type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Username string `envconfig:"REDIS_USERNAME"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB"`
}

// Config is the full service configuration.
type Config struct {
	ProjectID      string   `envconfig:"PROJECT_ID" validate:"required"`
	CollectionName string   `envconfig:"COLLECTION_NAME" validate:"required"`
	TopicTags      []string `envconfig:"TOPIC_TAGS" default:"#NFTs,#Solana"`

	// FetchLimitSeconds is the absolute epoch floor (seconds) below which
	// sales are never announced. Zero disables the floor.
	FetchLimitSeconds int64 `envconfig:"FETCH_LIMIT_SECONDS"`

	// FetchEverySeconds is the fixed sleep between fetch cycles.
	FetchEverySeconds int `envconfig:"FETCH_EVERY_SECONDS" default:"60" validate:"gte=1"`

	PageSize int `envconfig:"PAGE_SIZE" default:"50" validate:"gte=1"`
	MaxPages int `envconfig:"MAX_PAGES" default:"3" validate:"gte=1"`

	SnapshotFile string `envconfig:"SNAPSHOT_FILE" default:"marketplaces.yaml" validate:"required"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`

	Hyperspace Hyperspace
	Twitter    Twitter
	Redis      Redis
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, validator.Validate(cfg)
}

package config

import (
	"fmt"
	"time"

	"preventa/internal/infrastructure/logger"

	"github.com/caarlos0/env/v11"
)

// Config is the static configuration of the service, read from the
// environment. .env files are loaded by main through godotenv before Load runs.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// BackendURL is the spreadsheet web app endpoint (?op=... dispatched).
	BackendURL     string        `env:"BACKEND_URL"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"30s"`

	// StorageDriver selects where drafts, queues and catalog snapshots live:
	// memory, dynamodb or mongodb.
	StorageDriver   string `env:"STORAGE_DRIVER" envDefault:"memory"`
	StoreTable      string `env:"STORE_TABLE" envDefault:"preventa_store"`
	StoreCollection string `env:"STORE_COLLECTION" envDefault:"store"`
	MongoURI        string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase   string `env:"MONGODB_DATABASE" envDefault:"preventa"`

	// CatalogIDPolicy decides what happens to catalog rows without an id:
	// deterministic, drop or random.
	CatalogIDPolicy string `env:"CATALOG_ID_POLICY" envDefault:"deterministic"`

	GeolocationTimeout time.Duration `env:"GEOLOCATION_TIMEOUT" envDefault:"10s"`
	SyncOrderDelay     time.Duration `env:"SYNC_ORDER_DELAY" envDefault:"1s"`
	PhoneCountryPrefix string        `env:"PHONE_COUNTRY_PREFIX" envDefault:"549"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`

	Log logger.Config `envPrefix:"LOG_"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	switch cfg.StorageDriver {
	case "memory", "dynamodb", "mongodb":
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return cfg, nil
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "secret",
			TokenIssuer:   "clerk",
			WebhookSecret: "whsec_dGVzdA==",
		},
		Storage: Storage{
			DB:   DB{Driver: "pgx", DSN: "postgres://localhost/everhold"},
			Blob: Blob{BaseURL: "https://blob.example.com", Bucket: "legacy-media"},
		},
		Server: Server{HTTPAddress: ":8080", RequestTimeout: 30 * time.Second},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.Driver = "oracle"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDBDriver, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultBlobBucket, cfg.Storage.Blob.Bucket)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.Driver = "sqlite3"
	cfg.applyDefaults()

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}

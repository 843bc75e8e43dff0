package config

import "time"

// Fallback values applied after all config sources are merged.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultDBDriver       = "pgx"
	DefaultBlobBucket     = "legacy-media"
	DefaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills blanks the operator left in every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Storage.Blob.Bucket == "" {
		cfg.Storage.Blob.Bucket = DefaultBlobBucket
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

package config

// EnvPrefix is intentionally empty: every variable carries the SHOPYARD_
// prefix explicitly in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "SHOPYARD_APP_ENV"
	EnvDBDSN  = "SHOPYARD_DB_DSN"
	EnvDBHost = "SHOPYARD_DB_HOST"
	EnvDBUser = "SHOPYARD_DB_USER"
	EnvDBName = "SHOPYARD_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

package config

const (
	// EnvPrefix is passed to envconfig; individual fields carry full names.
	EnvPrefix = "MARROM"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "MARROM_DB_DSN"
	EnvDBHost = "MARROM_DB_HOST"
	EnvDBUser = "MARROM_DB_USER"
	EnvDBName = "MARROM_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

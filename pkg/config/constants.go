package config

const (
	// EnvPrefix is passed to envconfig; variable names are fully spelled out
	// in the struct tags, so the prefix stays empty.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

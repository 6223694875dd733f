package config

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	IsAtRemote = "IS_AT_REMOTE"
	ServerPort = "SERVER_PORT"

	DatabaseUrl = "DATABASE_URL"

	JwtSecretKey       = "JWT_SECRET_KEY"
	JwtAccessTokenTtl  = "JWT_ACCESS_TOKEN_TTL"
	JwtRefreshTokenTtl = "JWT_REFRESH_TOKEN_TTL"

	SeedDefaultUsers = "SEED_DEFAULT_USERS"
)

type DatabaseConfig struct {
	Url string
}

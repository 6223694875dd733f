package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kr/pretty"
)

const (
	DefaultAccessTokenTtl  = 24 * time.Hour
	DefaultRefreshTokenTtl = 168 * time.Hour
)

type Config struct {
	ServerPort string
	Database   DatabaseConfig
	Jwt        JwtConfig
}

type JwtConfig struct {
	SecretKey       string
	AccessTokenTtl  time.Duration
	RefreshTokenTtl time.Duration
}

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = "8080"
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	databaseConfig, err := ReadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort: serverPort,
		Database:   databaseConfig,
		Jwt:        jwtConfig,
	}, nil
}

func (c *Config) Print() {
	_, _ = pretty.Println(c)
}

func ReadDatabaseConfig() (DatabaseConfig, error) {
	databaseUrl := os.Getenv(DatabaseUrl)
	if databaseUrl == "" {
		return DatabaseConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, DatabaseUrl)
	}

	return DatabaseConfig{
		Url: databaseUrl,
	}, nil
}

func ReadJwtConfig() (JwtConfig, error) {
	secretKey := os.Getenv(JwtSecretKey)
	if secretKey == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtSecretKey)
	}

	accessTokenTtl := DefaultAccessTokenTtl
	rawAccessTokenTtl := os.Getenv(JwtAccessTokenTtl)
	if rawAccessTokenTtl != "" {
		parsedAccessTokenTtl, err := time.ParseDuration(rawAccessTokenTtl)
		if err != nil {
			return JwtConfig{}, fmt.Errorf("%s variable is not a valid duration: %w", JwtAccessTokenTtl, err)
		}
		accessTokenTtl = parsedAccessTokenTtl
	}

	refreshTokenTtl := DefaultRefreshTokenTtl
	rawRefreshTokenTtl := os.Getenv(JwtRefreshTokenTtl)
	if rawRefreshTokenTtl != "" {
		parsedRefreshTokenTtl, err := time.ParseDuration(rawRefreshTokenTtl)
		if err != nil {
			return JwtConfig{}, fmt.Errorf("%s variable is not a valid duration: %w", JwtRefreshTokenTtl, err)
		}
		refreshTokenTtl = parsedRefreshTokenTtl
	}

	return JwtConfig{
		SecretKey:       secretKey,
		AccessTokenTtl:  accessTokenTtl,
		RefreshTokenTtl: refreshTokenTtl,
	}, nil
}

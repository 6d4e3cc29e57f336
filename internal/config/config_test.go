package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	t := s.T()
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("FINANCE_API_URL", "")
	t.Setenv("FINANCE_API_TIMEOUT", "")
	t.Setenv("JWT_ENABLED", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	s.Equal("3001", cfg.Server.Port)
	s.Equal(DriverSQLite, cfg.Database.Driver)
	s.Equal(DefaultAPIURL, cfg.Client.BaseURL)
	s.Zero(cfg.Client.Timeout)
	s.False(cfg.JWT.Enabled)
	s.Nil(cfg.JWT.PublicKey)
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
	s.True(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestLoadClientConfig_FromEnvironment() {
	s.T().Setenv("FINANCE_API_URL", "https://finance.example.com/api/")
	s.T().Setenv("FINANCE_API_TIMEOUT", "5s")

	cfg := LoadClientConfig()

	s.Equal("https://finance.example.com/api", cfg.BaseURL)
	s.Equal(5*time.Second, cfg.Timeout)
}

func (s *ConfigTestSuite) TestLoad_InvalidNumbersFallBackToDefaults() {
	s.T().Setenv("RATE_LIMIT_PER_SECOND", "lots")
	s.T().Setenv("DASHBOARD_CACHE_TTL", "soon")
	s.T().Setenv("SEED_DATABASE", "maybe")

	cfg := Load()

	s.Equal(20, cfg.Security.RateLimitPerSecond)
	s.Equal(30*time.Second, cfg.Cache.TTL)
	s.True(cfg.Seed.Enabled)
}

func (s *ConfigTestSuite) TestLoad_CORSOriginsAreTrimmed() {
	s.T().Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://app.example.com ")

	cfg := Load()

	s.Equal([]string{"http://localhost:3000", "https://app.example.com"}, cfg.Server.CORSAllowOrigins)
}

func (s *ConfigTestSuite) TestLoad_JWTEnabledGeneratesDevelopmentKeys() {
	s.T().Setenv("JWT_ENABLED", "true")
	s.T().Setenv("JWT_PUBLIC_KEY", "")
	s.T().Setenv("APP_ENV", "development")

	cfg := Load()

	s.NotNil(cfg.JWT.PrivateKey)
	s.NotNil(cfg.JWT.PublicKey)
}

func (s *ConfigTestSuite) TestLoadKeysFromEnvVars_PublicKeyOnly() {
	_, publicKey, err := GenerateRSAKeyPair()
	s.Require().NoError(err)

	der, err := x509.MarshalPKIXPublicKey(publicKey)
	s.Require().NoError(err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	cfg := &Config{}
	private, public, err := cfg.loadKeysFromEnvVars("", base64.StdEncoding.EncodeToString(pemBytes))

	s.NoError(err)
	s.Nil(private)
	s.True(public.Equal(publicKey))
}

func (s *ConfigTestSuite) TestLoadKeysFromEnvVars_InvalidBase64() {
	cfg := &Config{}
	_, _, err := cfg.loadKeysFromEnvVars("", "not base64!")
	s.Error(err)
}

func (s *ConfigTestSuite) TestDSN() {
	sqliteCfg := DatabaseConfig{Driver: DriverSQLite, SQLitePath: "/tmp/finance.db"}
	s.Equal("/tmp/finance.db", sqliteCfg.DSN())

	pgCfg := DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	s.Equal("host=db port=5432 user=u password=p dbname=n sslmode=disable", pgCfg.DSN())
}

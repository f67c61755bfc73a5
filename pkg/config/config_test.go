package config

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestLoadDefaults(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/todoapi")

	cfg, err := Load()
	Expect(err).To(BeNil())

	Expect(cfg.Port).To(Equal("8080"))
	Expect(cfg.Environment).To(Equal("development"))
	Expect(cfg.DatabaseAdapter).To(Equal(AdapterPostgres))
	Expect(cfg.RateLimitEnabled).To(BeTrue())
	Expect(cfg.EnforceHTTPS).To(BeFalse())
}

func TestLoadPostgresRequiresDatabaseURL(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_ADAPTER", AdapterPostgres)

	_, err := Load()
	Expect(err).To(HaveOccurred())
}

func TestLoadSqliteWithoutDatabaseURL(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_ADAPTER", AdapterSqlite)
	t.Setenv("DATABASE_PATH", "/tmp/test.db")

	cfg, err := Load()
	Expect(err).To(BeNil())

	Expect(cfg.DatabaseAdapter).To(Equal(AdapterSqlite))
	Expect(cfg.DatabasePath).To(Equal("/tmp/test.db"))
}

func TestLoadReleaseModeEnforcesHTTPS(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/todoapi")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load()
	Expect(err).To(BeNil())

	Expect(cfg.Environment).To(Equal("production"))
	Expect(cfg.EnforceHTTPS).To(BeTrue())
}

func TestLoadRateLimitDisabled(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/todoapi")
	t.Setenv("RATE_LIMIT_DISABLED", "true")

	cfg, err := Load()
	Expect(err).To(BeNil())

	Expect(cfg.RateLimitEnabled).To(BeFalse())
}

func TestDefaultRateLimits(t *testing.T) {
	RegisterTestingT(t)

	cfg := GetDefaultConfig()

	Expect(cfg.RateLimitConfigs["/auth/signup"].Requests).To(Equal(5))
	Expect(cfg.RateLimitConfigs["/auth/login"].Requests).To(Equal(10))
	Expect(cfg.RateLimitConfigs["/todos"].Requests).To(Equal(100))

	for _, limit := range cfg.RateLimitConfigs {
		Expect(limit.Window).To(Equal(time.Minute))
	}
}

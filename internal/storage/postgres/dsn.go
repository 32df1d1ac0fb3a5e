package postgres

import (
	"fmt"
	"strings"

	"github.com/brandkit-studio/brandkit-backend/config"
)

// DSN returns DB_DSN when set, otherwise a key/value connection string built from the
// discrete DB_* settings.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		quote(cfg.Host), cfg.Port, quote(cfg.User), quote(cfg.Password), quote(cfg.Name),
	)
}

// quote applies libpq key/value quoting when v is empty or has spaces, quotes or backslashes.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}

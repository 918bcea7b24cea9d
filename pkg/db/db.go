package db

import (
	"fmt"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
)

func GetDBDSN(config *config.PostgresConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.User,
		config.Password,
		config.Host,
		config.Port,
		config.DBName,
		config.SSLMode,
	)
}

package data

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ansel1/merry"
)

const (
	DriverSqlite   = "sqlite3"
	DriverMysql    = "mysql"
	DriverPostgres = "pgx"
)

type Config struct {
	Driver   string `yaml:"driver" toml:"driver" comment:"sqlite3 | mysql | pgx"`
	File     string `yaml:"file" toml:"file" comment:"sqlite database file"`
	Host     string `yaml:"host" toml:"host"`
	Port     int    `yaml:"port" toml:"port"`
	User     string `yaml:"user" toml:"user"`
	Password string `yaml:"password" toml:"password"`
	Name     string `yaml:"name" toml:"name" comment:"database name"`
}

func DefaultConfig() Config {
	return Config{
		Driver:   DriverSqlite,
		File:     "poisepms.sqlite",
		Host:     "localhost",
		Port:     3306,
		User:     "otheruser",
		Password: "swordfish",
		Name:     "PoisePMS",
	}
}

// DSN builds the data source name understood by the configured driver.
func (c Config) DSN() (string, error) {
	switch strings.ToLower(c.Driver) {
	case DriverSqlite, "":
		return c.File, nil
	case DriverMysql:
		params := url.Values{}
		params.Set("parseTime", "true")
		params.Set("loc", "UTC")
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			c.User, c.Password, c.Host, c.Port, c.Name, params.Encode()), nil
	case DriverPostgres, "postgres":
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
			Path:     c.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	}
	return "", merry.Errorf("unknown database driver %q", c.Driver)
}

func (c Config) driverName() string {
	switch strings.ToLower(c.Driver) {
	case DriverMysql:
		return DriverMysql
	case DriverPostgres, "postgres":
		return DriverPostgres
	}
	return DriverSqlite
}

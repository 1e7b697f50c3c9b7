package core

import (
	"fmt"
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kat-co/vala"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		Build    string
		WorkDir  string

		AppName          string
		SecretKey        string
		FrontendBaseURL  string
		DefaultFromEmail mail.Address
		EnquiryInbox     mail.Address

		SendgridApiKey        string
		RollbarToken          string
		ProviderWebhookSecret string

		Server   serverConfig
		Database DatabaseConfig
		Catalog  catalogConfig
	}

	serverConfig struct {
		Host                      string
		Port                      int
		DebugHost                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          int
		DisableTLS    bool
	}

	catalogConfig struct {
		CacheTTL time.Duration
	}
)

func (c serverConfig) Address() string   { return fmt.Sprintf("%s:%d", c.Host, c.Port) }
func (c DatabaseConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// NewConfig loads the app configuration from the environment.
// An optional `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Campusdir")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "w3lp)x0c&2m$+a7=ul&fqh!v2(r!d)#*s2(#gy5j^$dqfm9eno")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("enquiryInbox", "enquiries@localhost")
	conf.SetDefault("serverHost", "0.0.0.0")
	conf.SetDefault("serverPort", 8000)
	conf.SetDefault("debugHost", "0.0.0.0:4000")
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("dbEngine", "postgres")
	conf.SetDefault("dbName", "campusdir")
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", 5432)
	conf.SetDefault("dbDisableTLS", true)
	conf.SetDefault("catalogCacheTTL", time.Hour)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		Env:              env,
		Build:            conf.GetString("build"),
		WorkDir:          wd,
		AppName:          conf.GetString("appName"),
		SecretKey:        conf.GetString("secretKey"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		EnquiryInbox:     mail.Address{Name: "Enquiries", Address: conf.GetString("enquiryInbox")},

		SendgridApiKey:        conf.GetString("sendgridApiKey"),
		RollbarToken:          conf.GetString("rollbarToken"),
		ProviderWebhookSecret: conf.GetString("providerWebhookSecret"),

		Server: serverConfig{
			Host:                      conf.GetString("serverHost"),
			Port:                      conf.GetInt("serverPort"),
			DebugHost:                 conf.GetString("debugHost"),
			ShutdownTimeout:           conf.GetDuration("shutdownTimeout"),
			JWTExpirationDelta:        conf.GetDuration("jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("jwtRefreshExpirationDelta"),
		},
		Database: DatabaseConfig{
			Engine:        conf.GetString("dbEngine"),
			Name:          conf.GetString("dbName"),
			User:          conf.GetString("dbUser"),
			Password:      conf.GetString("dbPassword"),
			AdminUser:     conf.GetString("dbAdminUser"),
			AdminPassword: conf.GetString("dbAdminPassword"),
			Host:          conf.GetString("dbHost"),
			Port:          conf.GetInt("dbPort"),
			DisableTLS:    conf.GetBool("dbDisableTLS"),
		},
		Catalog: catalogConfig{
			CacheTTL: conf.GetDuration("catalogCacheTTL"),
		},
	}

	if err := c.check(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return c
}

// check validates settings the app cannot run without.
func (c *Config) check() error {
	checks := []vala.Checker{
		vala.StringNotEmpty(c.SecretKey, "SecretKey"),
		vala.StringNotEmpty(c.Database.Engine, "Database.Engine"),
		vala.StringNotEmpty(c.Database.Name, "Database.Name"),
	}
	if !c.Debug {
		checks = append(checks,
			vala.StringNotEmpty(c.SendgridApiKey, "SendgridApiKey"),
			vala.StringNotEmpty(c.RollbarToken, "RollbarToken"),
			vala.StringNotEmpty(c.ProviderWebhookSecret, "ProviderWebhookSecret"),
		)
	}
	return vala.BeginValidation().Validate(checks...).Check()
}

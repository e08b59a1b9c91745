package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	catalogx "github.com/tanpawarit/Libria-Library-Backend/agent/catalog"
	dispatchx "github.com/tanpawarit/Libria-Library-Backend/agent/dispatch"
	profilex "github.com/tanpawarit/Libria-Library-Backend/agent/profile"
	registrationx "github.com/tanpawarit/Libria-Library-Backend/agent/registration"
	serverx "github.com/tanpawarit/Libria-Library-Backend/agent/server"
	configx "github.com/tanpawarit/Libria-Library-Backend/pkg/config"
	_ "github.com/tanpawarit/Libria-Library-Backend/pkg/logger/autoload"
)

type AppConfig struct {
	ProfileDriver string `envconfig:"PROFILE_DRIVER" default:"memory"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"libria_users.db"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	profiles, err := newProfileStore(*appCfg)
	if err != nil {
		panic(err)
	}

	catalogSvc := catalogx.NewService(catalogx.SeedInventory())
	registrationSvc := registrationx.NewService(
		registrationx.NewStore(),
		profiles,
		registrationx.NewGenerator(),
	)
	dispatcher := dispatchx.New(catalogSvc, registrationSvc)

	serverCfg := configx.MustNew[serverx.Config]("HTTP")
	srv := serverx.New(dispatcher)

	log.Info().Str("profile_driver", appCfg.ProfileDriver).Msg("desk backend starting")
	if err := srv.ListenAndServe(*serverCfg); err != nil {
		panic(err)
	}
}

func newProfileStore(cfg AppConfig) (profilex.Store, error) {
	switch cfg.ProfileDriver {
	case "memory":
		return profilex.NewMemoryStore(), nil
	case "sqlite":
		return profilex.NewSQLiteStore(cfg.SQLitePath)
	case "postgres":
		pgCfg := configx.MustNew[profilex.PostgresConfig]("POSTGRES")
		store, err := profilex.NewPostgresStore(*pgCfg)
		if err != nil {
			return nil, err
		}
		if err := store.Init(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown profile driver: %s", cfg.ProfileDriver)
	}
}

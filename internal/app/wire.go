//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/rdatadao/rdat-registry/internal/adapters"
	"github.com/rdatadao/rdat-registry/internal/config"
	"github.com/rdatadao/rdat-registry/internal/logging"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowAddresses,
		usecase.NewListNetworks,
		usecase.NewShowABI,
		usecase.NewGenerateBindings,
		usecase.NewInitBindgen,
		usecase.NewCheckDeployments,
		usecase.NewAuditRegistry,

		// App
		NewApp,
	)
	return nil, nil
}

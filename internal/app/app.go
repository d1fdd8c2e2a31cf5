package app

import (
	"log/slog"

	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	ShowAddresses    *usecase.ShowAddresses
	ListNetworks     *usecase.ListNetworks
	ShowABI          *usecase.ShowABI
	GenerateBindings *usecase.GenerateBindings
	InitBindgen      *usecase.InitBindgen
	CheckDeployments *usecase.CheckDeployments
	AuditRegistry    *usecase.AuditRegistry
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	showAddresses *usecase.ShowAddresses,
	listNetworks *usecase.ListNetworks,
	showABI *usecase.ShowABI,
	generateBindings *usecase.GenerateBindings,
	initBindgen *usecase.InitBindgen,
	checkDeployments *usecase.CheckDeployments,
	auditRegistry *usecase.AuditRegistry,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		ShowAddresses:    showAddresses,
		ListNetworks:     listNetworks,
		ShowABI:          showABI,
		GenerateBindings: generateBindings,
		InitBindgen:      initBindgen,
		CheckDeployments: checkDeployments,
		AuditRegistry:    auditRegistry,
	}, nil
}

// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/doeshing/ollash/internal/application/doctor"
	"github.com/doeshing/ollash/internal/application/query"
	"github.com/doeshing/ollash/internal/infrastructure/ai"
	"github.com/doeshing/ollash/internal/infrastructure/config"
	"github.com/doeshing/ollash/internal/infrastructure/executor"
	"github.com/doeshing/ollash/internal/infrastructure/history"
	"github.com/doeshing/ollash/internal/infrastructure/security"
	"github.com/doeshing/ollash/internal/pkg/logger"
	"github.com/doeshing/ollash/internal/ports"
)

// Container holds the wired dependency graph. Logger and Inference are the
// concrete adapters so the CLI can adjust them after flag parsing.
type Container struct {
	QueryService   *query.Service
	DoctorService  *doctor.Service
	ConfigProvider ports.ConfigProvider
	HistoryStore   ports.HistoryRepository
	Inference      *ai.OllamaClient
	Logger         *logger.LogrusLogger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)

	classifier, err := security.NewClassifier(cfg.Security.RulesFile)
	if err != nil {
		return nil, err
	}

	var historyStore ports.HistoryRepository
	if cfg.History.Enabled {
		store, err := history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			log.Warn("history store unavailable", map[string]interface{}{"error": err.Error()})
		} else {
			historyStore = store
		}
	}

	inference := ai.NewOllamaClient(cfg, log)

	queryService := &query.Service{
		ConfigProvider: cfgLoader,
		Client:         inference,
		Classifier:     classifier,
		Executor:       executor.NewLocalExecutor(cfg.Execution.Shell),
		History:        historyStore,
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
	}

	return &Container{
		QueryService:   queryService,
		DoctorService:  doctorService,
		ConfigProvider: cfgLoader,
		HistoryStore:   historyStore,
		Inference:      inference,
		Logger:         log,
	}, nil
}

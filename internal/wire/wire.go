// Package wire provides dependency injection for the hearth application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/hearth/internal/adapters/filesystem"
	gitadapter "github.com/example/hearth/internal/adapters/git"
	"github.com/example/hearth/internal/adapters/sqlite"
	"github.com/example/hearth/internal/app"
	"github.com/example/hearth/internal/config"
	"github.com/example/hearth/internal/db"
	"github.com/example/hearth/internal/ports/primary"
)

var (
	projectService  primary.ProjectService
	clanService     primary.ClanService
	collapseService primary.CollapseService
	stampService    primary.StampService
	once            sync.Once
)

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// ClanService returns the singleton ClanService instance.
func ClanService() primary.ClanService {
	once.Do(initServices)
	return clanService
}

// CollapseService returns the singleton CollapseService instance.
func CollapseService() primary.CollapseService {
	once.Do(initServices)
	return collapseService
}

// StampService returns the singleton StampService instance.
func StampService() primary.StampService {
	once.Do(initServices)
	return stampService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Secondary adapters
	git := gitadapter.NewAdapter()
	projectStore := filesystem.NewProjectStore()
	stateStore := filesystem.NewClanStateStore()
	constantStore := filesystem.NewConstantStore()
	registry := sqlite.NewRegistryRepository(database)
	journal := sqlite.NewJournalRepository(database)
	steps := sqlite.NewCollapseStepRepository(database)

	// Services (primary ports implementation)
	projectService = app.NewProjectService(git, projectStore, registry, journal, cfg.ProjectsPath)
	clanService = app.NewClanService(git, projectStore, stateStore, registry, journal)
	collapseService = app.NewCollapseService(git, projectStore, stateStore, constantStore, registry, steps, journal)
	stampService = app.NewStampService(git, projectStore, stateStore, registry)
}

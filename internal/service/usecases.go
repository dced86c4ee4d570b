package service

import (
	"database/sql"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/weather"
)

// NewUseCases wires every service over one database. provider is normally a
// weather.CachedProvider backed by the same store.
func NewUseCases(database *sql.DB, provider weather.Provider, opts ...Option) contract.UseCases {
	repos := NewSQLiteRepos(database)
	uow := db.NewSQLiteUnitOfWork(database)
	return contract.UseCases{
		Profile:  NewProfileService(repos.Profiles, opts...),
		Tracker:  NewTrackerService(repos, uow, opts...),
		Guidance: NewGuidanceService(repos, opts...),
		Health:   NewHealthService(repos, opts...),
		Chat:     NewChatService(repos, uow, opts...),
		Quiz:     NewQuizService(repos, uow, opts...),
		Weather:  NewWeatherService(provider, repos.Weather, opts...),
	}
}

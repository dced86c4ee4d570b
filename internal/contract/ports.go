package contract

import "github.com/alexanderramin/aura/internal/app"

type ProfileUseCase = app.ProfileUseCase

type TrackerUseCase = app.TrackerUseCase

type GuidanceUseCase = app.GuidanceUseCase

type HealthUseCase = app.HealthUseCase

type ChatUseCase = app.ChatUseCase

type QuizUseCase = app.QuizUseCase

type WeatherUseCase = app.WeatherUseCase

// UseCases bundles every port the CLI and HTTP hosts drive.
type UseCases struct {
	Profile  ProfileUseCase
	Tracker  TrackerUseCase
	Guidance GuidanceUseCase
	Health   HealthUseCase
	Chat     ChatUseCase
	Quiz     QuizUseCase
	Weather  WeatherUseCase
}

package contract

import (
	"time"

	"github.com/alexanderramin/aura/internal/app"
)

type GuidanceResponse = app.GuidanceResponse

type DashboardResponse = app.DashboardResponse

type CycleRequest = app.CycleRequest

func NewCycleRequest(start time.Time, lengthDays int) CycleRequest {
	return app.NewCycleRequest(start, lengthDays)
}

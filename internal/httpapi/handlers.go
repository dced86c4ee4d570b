package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := s.uc.Guidance.Dashboard(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	resp, err := s.uc.Guidance.Recommendations(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	dash, err := s.uc.Guidance.Dashboard(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"score":          dash.Score,
		"steps":          dash.Metrics.Steps,
		"water":          dash.Metrics.Water,
		"calories":       dash.Metrics.Calories,
		"step_progress":  dash.StepProgress,
		"water_progress": dash.WaterProgress,
	})
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	dash, err := s.uc.Guidance.Dashboard(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"earned":  dash.Badges,
		"catalog": domain.BadgeCatalog,
	})
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	tips, err := s.uc.Guidance.Tips(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tips)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.uc.Profile.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.UserProfile
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := s.uc.Profile.Save(r.Context(), &p); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report, err := s.uc.Health.Analyze(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type cycleBody struct {
	Start  string `json:"start"`
	Length int    `json:"length"`
}

func (s *Server) handleCycle(w http.ResponseWriter, r *http.Request) {
	var body cycleBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	var start time.Time
	if body.Start != "" {
		var err error
		start, err = time.ParseInLocation(time.DateOnly, body.Start, time.Local)
		if err != nil {
			s.writeError(w, r, contract.NewError(contract.ErrInvalidCycle, "start must be YYYY-MM-DD, got %q", body.Start))
			return
		}
	}
	report, err := s.uc.Health.Cycle(r.Context(), contract.NewCycleRequest(start, body.Length))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleRecentLogs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, contract.RecentLogLimit)
	if err != nil {
		badRequest(w, err)
		return
	}
	logs, err := s.uc.Tracker.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

type activityBody struct {
	Type    string `json:"type"`
	Minutes int    `json:"minutes"`
}

func (s *Server) handleLogActivity(w http.ResponseWriter, r *http.Request) {
	var body activityBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	resp, err := s.uc.Tracker.LogActivity(r.Context(),
		contract.NewLogActivityRequest(domain.ActivityType(body.Type), body.Minutes))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleDrinkWater(w http.ResponseWriter, r *http.Request) {
	resp, err := s.uc.Tracker.DrinkWater(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type caloriesBody struct {
	Calories int `json:"calories"`
}

func (s *Server) handleAddCalories(w http.ResponseWriter, r *http.Request) {
	var body caloriesBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	resp, err := s.uc.Tracker.AddCalories(r.Context(), body.Calories)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type moodBody struct {
	Mood string `json:"mood"`
}

func (s *Server) handleLogMood(w http.ResponseWriter, r *http.Request) {
	var body moodBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	resp, err := s.uc.Tracker.LogMood(r.Context(), contract.NewLogMoodRequest(domain.MoodLabel(body.Mood)))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Tracker.Reset(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentWeather(w http.ResponseWriter, r *http.Request) {
	snap, err := s.uc.Weather.Current(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if snap == nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no current weather; POST a pincode first", Code: codeNotFound})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type weatherBody struct {
	Pincode string `json:"pincode"`
}

func (s *Server) handleFetchWeather(w http.ResponseWriter, r *http.Request) {
	var body weatherBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	snap, err := s.uc.Weather.Fetch(r.Context(), body.Pincode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, 0)
	if err != nil {
		badRequest(w, err)
		return
	}
	msgs, err := s.uc.Chat.History(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

type chatBody struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body chatBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	resp, err := s.uc.Chat.Send(r.Context(), contract.NewChatRequest(body.Message))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearChat(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Chat.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleQuizStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.uc.Quiz.Status(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	status, err := s.uc.Quiz.Start(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

type answerBody struct {
	Answer *bool `json:"answer"`
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var body answerBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	if body.Answer == nil {
		badRequest(w, errors.New("answer is required"))
		return
	}
	resp, err := s.uc.Quiz.Answer(r.Context(), *body.Answer)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func queryLimit(r *http.Request, fallback int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get("limit"))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	return n, nil
}

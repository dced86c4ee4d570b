package domain

type BadgeID string

const (
	BadgeActive    BadgeID = "active"
	BadgeHydration BadgeID = "hydration"
	BadgeEmotion   BadgeID = "emotion"
	BadgeMental    BadgeID = "mental"
	BadgeFitness   BadgeID = "fitness"
	BadgeWellness  BadgeID = "wellness"
)

// Badge thresholds.
const (
	ActiveStepsThreshold     = 6000
	HydrationWaterThreshold  = 8
	EmotionMoodsThreshold    = 5
	MentalQuizThreshold      = 14
	FitnessActivityThreshold = 10
	WellnessScoreThreshold   = 80
)

type Badge struct {
	ID   BadgeID `json:"id"`
	Name string  `json:"name"`
	Icon string  `json:"icon"`
	Rule string  `json:"rule"`
}

// BadgeCatalog is the fixed catalog in award order.
var BadgeCatalog = []Badge{
	{ID: BadgeActive, Name: "Active Champ", Icon: "🚶", Rule: "Reach 6,000 steps"},
	{ID: BadgeHydration, Name: "Hydration Hero", Icon: "💧", Rule: "Drink 8 glasses of water"},
	{ID: BadgeEmotion, Name: "Emotion Aware", Icon: "💖", Rule: "Log 5 moods"},
	{ID: BadgeMental, Name: "Mental Master", Icon: "🧠", Rule: "Score 14/20 on the quiz"},
	{ID: BadgeFitness, Name: "Fitness Enthusiast", Icon: "🏃", Rule: "Log 10 activities"},
	{ID: BadgeWellness, Name: "Wellness Warrior", Icon: "🌟", Rule: "Reach a wellness score of 80"},
}

// LookupBadge returns the catalog entry for id.
func LookupBadge(id BadgeID) (Badge, bool) {
	for _, b := range BadgeCatalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// BadgeSet is the set of earned badges. It only grows.
type BadgeSet map[BadgeID]struct{}

func NewBadgeSet(ids ...BadgeID) BadgeSet {
	s := make(BadgeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s BadgeSet) Has(id BadgeID) bool {
	_, ok := s[id]
	return ok
}

func (s BadgeSet) Add(id BadgeID) {
	s[id] = struct{}{}
}

// Ordered returns the earned badges in catalog order.
func (s BadgeSet) Ordered() []Badge {
	var out []Badge
	for _, b := range BadgeCatalog {
		if s.Has(b.ID) {
			out = append(out, b)
		}
	}
	return out
}

package wellness

// Tip is one entry in the daily tip bank.
type Tip struct {
	Icon  string `json:"icon"`
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

// TipBank is the fixed pool that daily tips are drawn from.
var TipBank = []Tip{
	{"🏃", "Movement", "Even 10-minute walks boost mood and energy significantly."},
	{"💤", "Sleep", "Maintain consistent sleep/wake times for better rest quality."},
	{"🧘", "Stress", "5-min breathing (inhale-4, hold-4, exhale-6) calms nervous system."},
	{"🥗", "Nutrition", "Eat rainbow colors - different nutrients in each color."},
	{"💪", "Strength", "2-3 weekly sessions improve bone density and metabolism."},
	{"🧠", "Mental Health", "Journaling helps process emotions and reduce anxiety."},
	{"⏰", "Meal Timing", "Last meal 3h before bed for better digestion and sleep."},
	{"🚰", "Hydration", "Water before meals aids digestion and portion control."},
	{"🌞", "Sunlight", "15-20 minutes daily boosts vitamin D and mood."},
	{"🎵", "Music", "Listening to favorite music can reduce stress hormones."},
	{"👥", "Social", "Regular social connections improve mental and physical health."},
	{"📵", "Digital Detox", "Screen-free time improves sleep and reduces eye strain."},
}

// DefaultTipCount is how many tips a daily selection holds.
const DefaultTipCount = 4

// PickTips draws n distinct tips using a partial Fisher-Yates shuffle.
func PickTips(r RandomSource, n int) []Tip {
	if n > len(TipBank) {
		n = len(TipBank)
	}
	if n <= 0 {
		return nil
	}
	pool := make([]Tip, len(TipBank))
	copy(pool, TipBank)
	for i := 0; i < n; i++ {
		j := i + boundedIndex(r, len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

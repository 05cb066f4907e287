package quest

import "fmt"

// Mission is a single mission inside a zone: a physical movement task,
// a thinking challenge, a completion proof, and an XP reward.
type Mission struct {
	ID         string
	Title      string
	Movement   string
	Thinking   string
	Proof      string
	XP         int
	Difficulty int // 1 (easy) to 5 (hard)
}

// HourRange is a half-open [Start, End) hour span within a 24-hour day.
type HourRange struct {
	Start int
	End   int
}

// Zone is a themed area of the day with its own missions. Zones carry
// an RGB color (components in [0,1]) used by downstream page styling.
type Zone struct {
	ID         string
	Name       string
	Icon       string
	Atmosphere string
	QuestType  string
	Hours      []HourRange
	Color      [3]float64
	Missions   []Mission
}

// zones covers the full 24-hour day. The dream-isle span wraps
// midnight, expressed as two ranges.
var zones = []Zone{
	{
		ID: "watchtower", Name: "The Watchtower", Icon: "🏰",
		Atmosphere: "Waking up, structure", QuestType: "Skill Quest",
		Hours: []HourRange{{6, 9}}, Color: [3]float64{0.95, 0.95, 0.85},
		Missions: []Mission{
			{ID: "wt_01", Title: "Don Your Armor", Movement: "10 squats.", Thinking: "GOAL: Plan two ways to get ready faster.", Proof: "✅ Checkmark", XP: 15, Difficulty: 1},
			{ID: "wt_02", Title: "Focus Reset", Movement: "Stand on one leg for 30 seconds.", Thinking: "GOAL: Find two tricks for a good start.", Proof: "✅ Note", XP: 20, Difficulty: 2},
			{ID: "wt_03", Title: "Tooth Monster", Movement: "2 minutes of brushing plus 10 jumping jacks.", Thinking: "GOAL: Defeat the bacteria.", Proof: "✅ Clean smile", XP: 20, Difficulty: 1},
		},
	},
	{
		ID: "wild-path", Name: "The Wild Path", Icon: "🌲",
		Atmosphere: "Outside, exploring", QuestType: "Exploration",
		Hours: []HourRange{{9, 12}}, Color: [3]float64{0.85, 0.95, 0.85},
		Missions: []Mission{
			{ID: "wp_01", Title: "Pattern Hunter", Movement: "Find three red things and touch them.", Thinking: "GOAL: Sketch a pattern you can see.", Proof: "✅ Sketch", XP: 25, Difficulty: 2},
			{ID: "wp_02", Title: "Trail Reader", Movement: "Walk 20 steps backward.", Thinking: "GOAL: Find a route from A to B.", Proof: "✅ Draw a map", XP: 30, Difficulty: 3},
		},
	},
	{
		ID: "tavern", Name: "The Tavern", Icon: "🍲",
		Atmosphere: "Eating, refueling", QuestType: "Energy Quest",
		Hours: []HourRange{{12, 13}}, Color: [3]float64{1.0, 0.9, 0.8},
		Missions: []Mission{
			{ID: "tv_01", Title: "Energy Scan", Movement: "Chew each bite ten times.", Thinking: "GOAL: Guess three ingredients in your food.", Proof: "✅ List", XP: 20, Difficulty: 1},
			{ID: "tv_02", Title: "Water Power", Movement: "Drink a glass of water.", Thinking: "GOAL: Feel the energy come back.", Proof: "✅ Check", XP: 15, Difficulty: 1},
		},
	},
	{
		ID: "workshop", Name: "The Workshop", Icon: "🔨",
		Atmosphere: "Building, creativity", QuestType: "Build Quest",
		Hours: []HourRange{{13, 15}}, Color: [3]float64{0.9, 0.9, 1.0},
		Missions: []Mission{
			{ID: "ws_01", Title: "Bridge Builder", Movement: "20 arm circles.", Thinking: "GOAL: Build a bridge from things in the room.", Proof: "✅ Photo or sketch", XP: 30, Difficulty: 3},
			{ID: "ws_02", Title: "Tower Engineer", Movement: "10 wall push-ups.", Thinking: "GOAL: Build the tallest tower you can.", Proof: "✅ Measure the height", XP: 35, Difficulty: 4},
		},
	},
	{
		ID: "arena", Name: "The Arena", Icon: "⚔️",
		Atmosphere: "Sport, action", QuestType: "Action Quest",
		Hours: []HourRange{{15, 17}}, Color: [3]float64{1.0, 0.85, 0.85},
		Missions: []Mission{
			{ID: "ar_01", Title: "Shadow Boxing", Movement: "30 seconds of air boxing.", Thinking: "GOAL: Be faster than your shadow.", Proof: "✅ Feel your pulse", XP: 35, Difficulty: 3},
			{ID: "ar_02", Title: "Lava Floor", Movement: "Stay off the floor for one minute.", Thinking: "GOAL: Find a safe route.", Proof: "✅ Made it", XP: 40, Difficulty: 4},
		},
	},
	{
		ID: "council-hall", Name: "The Council Hall", Icon: "🤝",
		Atmosphere: "Family, helping", QuestType: "Social Quest",
		Hours: []HourRange{{17, 19}}, Color: [3]float64{0.95, 0.85, 0.95},
		Missions: []Mission{
			{ID: "ch_01", Title: "The Messenger", Movement: "Deliver a message in a whisper.", Thinking: "GOAL: Make someone happy.", Proof: "✅ Smile received", XP: 45, Difficulty: 4},
			{ID: "ch_02", Title: "Table Knight", Movement: "Set the table in under two minutes.", Thinking: "GOAL: Helping is a matter of honor.", Proof: "✅ Everything in place", XP: 40, Difficulty: 3},
		},
	},
	{
		ID: "springs", Name: "The Springs", Icon: "🛁",
		Atmosphere: "Bath, hygiene", QuestType: "Water Quest",
		Hours: []HourRange{{19, 21}}, Color: [3]float64{0.8, 0.95, 1.0},
		Missions: []Mission{
			{ID: "sp_01", Title: "Foam Crown", Movement: "Wash your face.", Thinking: "GOAL: Get clean for the night.", Proof: "✅ Mirror check", XP: 25, Difficulty: 2},
			{ID: "sp_02", Title: "Tooth Guard", Movement: "3 minutes of brushing.", Thinking: "GOAL: No chance for cavities.", Proof: "✅ Clean", XP: 25, Difficulty: 2},
		},
	},
	{
		ID: "dream-isle", Name: "Dream Isle", Icon: "🌙",
		Atmosphere: "Sleep, quiet", QuestType: "Silent Quest",
		Hours: []HourRange{{21, 24}, {0, 6}}, Color: [3]float64{0.15, 0.15, 0.35},
		Missions: []Mission{
			{ID: "di_01", Title: "Dream Catcher", Movement: "Eyes closed, breathe deep.", Thinking: "GOAL: Remember the best part of today.", Proof: "✅ A thought", XP: 20, Difficulty: 1},
			{ID: "di_02", Title: "Silent Watch", Movement: "Lie completely still for one minute.", Thinking: "GOAL: Listen into the night.", Proof: "✅ Quiet", XP: 20, Difficulty: 1},
		},
	},
}

// Zones returns the zone table in day order.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// ZoneForHour returns the zone active at the given hour. Hours wrap
// around the 24-hour day; values outside 0-23 are normalized mod 24.
// If no range matches (which should not occur — the table covers all
// 24 hours) the first zone is returned as a fallback.
func ZoneForHour(hour int) Zone {
	h := ((hour % 24) + 24) % 24
	for _, z := range zones {
		for _, r := range z.Hours {
			if r.Start <= h && h < r.End {
				return z
			}
		}
	}
	return zones[0]
}

// PickMission selects a mission for the given hour and difficulty cap.
//
// Missions rated above maxDifficulty are excluded where possible; if
// the filter leaves nothing, the zone's full mission list is used. The
// same filter-then-fallback shape as Registry.Pick, minus the used-id
// tracking — missions repeat freely across days.
func PickMission(hour, maxDifficulty int, src Source) Mission {
	zone := ZoneForHour(hour)
	var candidates []Mission
	for _, m := range zone.Missions {
		if m.Difficulty <= maxDifficulty {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		candidates = zone.Missions
	}
	return candidates[src.Intn(len(candidates))]
}

// FormatHour formats an hour as 24-hour HH:00 with a leading zero,
// e.g. 3 becomes "03:00". Out-of-range hours are normalized mod 24.
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", ((hour%24)+24)%24)
}

// Package catalog holds the static festival data: the event schedule and the
// redemption store. Both are fixed at build time.
package catalog

import "strings"

// Event categories.
const (
	CategoryEngagement      = "Engagement"
	CategoryIntercollegiate = "Intercollegiate"
)

// Event is one festival activity. Engagement events award bonus points on
// registration; team events additionally require a roster within the member
// bounds.
type Event struct {
	ID         string
	Title      string
	Date       string
	Time       string
	Location   string
	Category   string
	Points     int
	TeamEvent  bool
	MinMembers int
	MaxMembers int
}

// Reward is one redeemable item in the festival store.
type Reward struct {
	Name  string
	Cost  int
	Emoji string
}

var events = []Event{
	{ID: "1", Title: "Prism Panel (Debate)", Date: "Nov 23 & 24", Time: "All Day", Location: "Seminar Hall A", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 2, MaxMembers: 2},
	{ID: "2", Title: "Pulse Parade (Group Dance)", Date: "Nov 23 & 24", Time: "All Day", Location: "Main Stage", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 6, MaxMembers: 10},
	{ID: "4", Title: "Roots in Reverb (Folk Dance)", Date: "Nov 23 & 24", Time: "All Day", Location: "Main Stage", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 6, MaxMembers: 10},
	{ID: "6", Title: "Psyk Exchange (Mock Trading)", Date: "Nov 23 & 24", Time: "All Day", Location: "Business Lab", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 2, MaxMembers: 2},
	{ID: "7", Title: "Chords of Confluence (Singing)", Date: "Nov 23 & 24", Time: "All Day", Location: "Main Stage", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 4, MaxMembers: 6},
	{ID: "8", Title: "Dreamcraft Deck (Pitch Deck)", Date: "Nov 23 & 24", Time: "All Day", Location: "Conference Room A", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 2, MaxMembers: 2},
	{ID: "10", Title: "Scenezone (Skit)", Date: "Nov 23 & 24", Time: "All Day", Location: "Auditorium", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 4, MaxMembers: 6},
	{ID: "11", Title: "Clash of Cadence (Dance Battle)", Date: "Nov 23 & 24", Time: "All Day", Location: "Open Air Theatre", Category: CategoryIntercollegiate},
	{ID: "13", Title: "Aurora Couture (Fashion Show)", Date: "Nov 23 & 24", Time: "All Day", Location: "Main Stage", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 8, MaxMembers: 12},
	{ID: "14", Title: "Aurora Eloquence (Elocution)", Date: "Nov 23 & 24", Time: "All Day", Location: "Seminar Hall B", Category: CategoryIntercollegiate},
	{ID: "17", Title: "Cluescape (Treasure Hunt)", Date: "Nov 23 & 24", Time: "All Day", Location: "Campus Wide", Category: CategoryIntercollegiate, TeamEvent: true, MinMembers: 2, MaxMembers: 2},
	{ID: "21", Title: "Gratitude Wall", Date: "Nov 23 & 24", Time: "All Day", Location: "Student Parking", Category: CategoryEngagement, Points: 30},
	{ID: "22", Title: "Memory Word Recall", Date: "Nov 23 & 24", Time: "All Day", Location: "New Building / Gazebo", Category: CategoryEngagement, Points: 30},
	{ID: "23", Title: "Thinking Outside the Box", Date: "Nov 23 & 24", Time: "All Day", Location: "Student Parking", Category: CategoryEngagement, Points: 30},
	{ID: "24", Title: "Movie Screening", Date: "Nov 23 & 24", Time: "Every Hour", Location: "Box Office Near Old NR Entrance", Category: CategoryEngagement, Points: 20},
	{ID: "26", Title: "MH Score Check", Date: "Nov 23 & 24", Time: "All Day", Location: "Wellness Desk", Category: CategoryEngagement, Points: 30},
	{ID: "27", Title: "Mental Health Quiz", Date: "Nov 23 & 24", Time: "All Day", Location: "Between Main Building and Gymkhana", Category: CategoryEngagement, Points: 20},
	{ID: "28", Title: "Spin the Wheel", Date: "Nov 23 & 24", Time: "All Day", Location: "Student Parking", Category: CategoryEngagement, Points: 50},
	{ID: "29", Title: "Stroop Effect", Date: "Nov 23 & 24", Time: "All Day", Location: "New Building Before NAMED", Category: CategoryEngagement, Points: 30},
	{ID: "30", Title: "Six Thinking Hats", Date: "Nov 23 & 24", Time: "All Day", Location: "NR 009", Category: CategoryEngagement, Points: 50},
	{ID: "31", Title: "KYC", Date: "Nov 23 & 24", Time: "All Day", Location: "NR 005", Category: CategoryEngagement, Points: 50},
	{ID: "32", Title: "Joy of Journaling", Date: "Nov 23 & 24", Time: "All Day", Location: "IT 002", Category: CategoryEngagement, Points: 20},
	{ID: "33", Title: "Well Being Kit", Date: "Nov 23 & 24", Time: "All Day", Location: "IT to Main Building 1st Entrance", Category: CategoryEngagement, Points: 100},
	{ID: "34", Title: "Dance Therapy", Date: "Nov 23 & 24", Time: "All Day", Location: "Badminton Hall", Category: CategoryEngagement, Points: 70},
	{ID: "35", Title: "Trash the Can'ts", Date: "Nov 23 & 24", Time: "All Day", Location: "Student Parking", Category: CategoryEngagement, Points: 50},
	{ID: "36", Title: "Art Therapy / Mind Mania", Date: "Nov 23 & 24", Time: "All Day", Location: "Student Parking", Category: CategoryEngagement, Points: 70},
}

var eventsByID = func() map[string]Event {
	m := make(map[string]Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}
	return m
}()

var rewards = []Reward{
	{Name: "Diary", Cost: 750, Emoji: "📔"},
	{Name: "Sipper", Cost: 550, Emoji: "🥤"},
	{Name: "Keychain", Cost: 350, Emoji: "🔑"},
	{Name: "Badge", Cost: 150, Emoji: "📛"},
}

// Events returns the full event schedule.
func Events() []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// EventByID looks up an event by its catalog id.
func EventByID(id string) (Event, bool) {
	e, ok := eventsByID[id]
	return e, ok
}

// Rewards returns the redemption store items, most expensive first.
func Rewards() []Reward {
	out := make([]Reward, len(rewards))
	copy(out, rewards)
	return out
}

// RewardByName looks up a store item by name, case-insensitively.
func RewardByName(name string) (Reward, bool) {
	for _, r := range rewards {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Reward{}, false
}

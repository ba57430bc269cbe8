package main

// Achievement definitions
type AchievementDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Achievements = []AchievementDef{
	{"first_blood", "First Blood", "Get your first kill"},
	{"brawler", "Brawler", "Reach 100 total kills"},
	{"warlord", "Warlord", "Reach 1000 total kills"},
	{"rampage", "Rampage", "Get 10 kills in a single match"},
	{"flawless", "Flawless Victory", "Win a match without dying"},
	{"victor", "Victor", "Win 10 matches"},
	{"gem_hoarder", "Gem Hoarder", "Collect 100 gems lifetime"},
	{"striker", "Striker", "Score 25 goals lifetime"},
	{"veteran", "Veteran", "Reach level 10"},
	{"elite", "Elite", "Reach level 25"},
	{"legend", "Legend", "Reach level 50"},
	{"marathon", "Marathon", "Play for 1 hour total"},
}

// CheckAchievements checks if any new achievements should be unlocked for a player.
// Returns a list of newly unlocked achievements.
func CheckAchievements(db *DB, playerID int64, matchKills, matchDeaths int, won bool) []AchievementDef {
	if db == nil {
		return nil
	}

	stats, err := db.GetStats(playerID)
	if err != nil || stats == nil {
		return nil
	}

	existing, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	var unlocked []AchievementDef

	check := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_blood":
			return stats.Kills >= 1
		case "brawler":
			return stats.Kills >= 100
		case "warlord":
			return stats.Kills >= 1000
		case "rampage":
			return matchKills >= 10
		case "flawless":
			return won && matchDeaths == 0
		case "victor":
			return stats.Wins >= 10
		case "gem_hoarder":
			return stats.Gems >= 100
		case "striker":
			return stats.Goals >= 25
		case "veteran":
			return stats.Level >= 10
		case "elite":
			return stats.Level >= 25
		case "legend":
			return stats.Level >= 50
		case "marathon":
			return stats.Playtime >= 3600
		}
		return false
	}

	for _, def := range Achievements {
		if check(def.ID) {
			if newlyUnlocked, err := db.UnlockAchievement(playerID, def.ID); err == nil && newlyUnlocked {
				unlocked = append(unlocked, def)
			}
		}
	}

	return unlocked
}

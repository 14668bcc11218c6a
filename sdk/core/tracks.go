package core

// Tracks maps each coding track's key to its display name. Track keys appear
// verbatim in user profiles, tasks, and analytics breakdowns.
var Tracks = map[string]string{
	"ai":     "AI/ML",
	"webdev": "Web Development",
	"dsa":    "Data Structures & Algorithms",
	"app":    "App Development",
}

// TrackName returns the display name for a track key, or the key itself if it
// is not a known track.
func TrackName(key string) string {
	if name, ok := Tracks[key]; ok {
		return name
	}
	return key
}

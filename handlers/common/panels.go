package common

// Panel represents a landing page section reachable by its own URL
type Panel struct {
	Url   string
	Title string
}

// Panels contains the list of all panels of the landing page
var Panels = []Panel{
	{Url: "story", Title: "Story Time"},
	{Url: "voice-lab", Title: "Voice Lab"},
	{Url: "videos", Title: "Videos"},
	{Url: "explore", Title: "Explore"},
}

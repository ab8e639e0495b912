package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Mark

	// media kinds
	Image
	Video

	// facet states
	Unassigned
	Loading
	Playing
	Holding
	Completed
	Failed

	// rotation
	Rotating
	Paused
)

var icons = map[Icon]*iconDef{
	Success:    {emoji: "🎉", nerd: "", plain: "✓", squares: "🟩"},
	Fail:       {emoji: "👹", nerd: "", plain: "✗", squares: "🟥"},
	Progress:   {emoji: "⏳", nerd: "", plain: "~", squares: "🟦"},
	Mark:       {emoji: "✨", nerd: "", plain: "*", squares: "🟪"},
	Image:      {emoji: "🖼️", nerd: "", plain: "img", squares: "🟨"},
	Video:      {emoji: "🎞️", nerd: "", plain: "vid", squares: "🟧"},
	Unassigned: {emoji: "💤", nerd: "", plain: "-", squares: "⬛"},
	Loading:    {emoji: "⏳", nerd: "", plain: "…", squares: "🟦"},
	Playing:    {emoji: "▶️", nerd: "", plain: ">", squares: "🟩"},
	Holding:    {emoji: "⏸️", nerd: "", plain: "=", squares: "🟪"},
	Completed:  {emoji: "✅", nerd: "", plain: ".", squares: "⬜"},
	Failed:     {emoji: "💥", nerd: "", plain: "!", squares: "🟥"},
	Rotating:   {emoji: "🔄", nerd: "", plain: "@", squares: "🟦"},
	Paused:     {emoji: "⏸️", nerd: "", plain: "||", squares: "⬜"},
}

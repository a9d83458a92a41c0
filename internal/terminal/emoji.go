package terminal

// Emoji prefixes used across command output.
const (
	EmojiWarn     = "⚠️"
	EmojiSleuth   = "🕵️"
	EmojiSparkles = "✨"
	EmojiSheep    = "🐑"
	EmojiSwirl    = "🌀"
)

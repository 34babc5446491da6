package discord

// Friendly message constants for Discord responses
const (
	MsgInvalidGame       = "🎱 **Unknown Game**\nPick one of the games from `/games`."
	MsgEncounterNotFound = "❓ **Play Not Found**\nThat encounter isn't in the log."
	MsgUnauthorized      = "🔑 **Not Authorized**\nThe bot's API key was rejected by the server."
	MsgServerUnavailable = "📡 **Server Unavailable**\nCouldn't reach the LuckyGen server. Try again shortly."
	MsgNoEncounters      = "No plays recorded yet. Good luck!"

	MsgGenericError = "❌ Something went wrong."
)

// Ping status values
const (
	PingAPIOnline  = "✅ Online"
	PingAPIOffline = "⚠️ Unreachable"
)

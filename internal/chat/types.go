package chat

// Channel identifies the surface a message arrived on.
type Channel string

const (
	ChannelHTTP      Channel = "http"
	ChannelWebSocket Channel = "websocket"
	ChannelMCP       Channel = "mcp"
	ChannelCLI       Channel = "cli"
)

// IncomingMessage is one utterance typed by a visitor or picked from the
// suggestion buttons.
type IncomingMessage struct {
	Channel Channel
	Text    string
}

// OutgoingMessage is the bot's reply bubble.
type OutgoingMessage struct {
	Text  string
	Kind  string
	Topic string
}

// DefaultSuggestions are the quick-reply buttons shown under the chat window.
var DefaultSuggestions = []string{
	"What services do you offer?",
	"Tell me about ethical AI",
	"How can AI help my business?",
}

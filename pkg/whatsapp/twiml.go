package whatsapp

import (
	"encoding/xml"
	"strings"
)

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

const helpText = `Agricultural Advisory System

Available commands:
- weather : get weather information
- market : get market prices
- disease : upload crop image for disease detection
- help : show this help message

For full features, visit our web dashboard!`

// ReplyFor routes an inbound message body to a canned reply and renders it
// as TwiML.
func ReplyFor(body string) string {
	var message string

	switch strings.ToLower(strings.TrimSpace(body)) {
	case "weather", "weather update", "weather info":
		message = "Weather information coming soon! Please use the web dashboard for now."
	case "market", "prices", "market prices":
		message = "Market prices coming soon! Please use the web dashboard for now."
	case "help", "commands":
		message = helpText
	case "disease", "detect", "crop image":
		message = "Please upload a crop image for disease detection. This feature will be available soon!"
	default:
		message = "Thanks for your message! For full features, please visit our web dashboard or type 'help' for available commands."
	}

	return renderTwiML(message)
}

// ErrorReply is the TwiML body returned when webhook processing fails.
func ErrorReply() string {
	return renderTwiML("Sorry, there was an error processing your message. Please try again later.")
}

func renderTwiML(message string) string {
	out, err := xml.Marshal(twimlResponse{Message: message})
	if err != nil {
		// twimlResponse cannot fail to marshal; keep the compiler honest
		return "<Response></Response>"
	}
	return xml.Header + string(out)
}

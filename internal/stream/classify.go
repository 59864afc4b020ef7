// README: Tagged-variant message classifier (weather vs location list vs plain text).
package stream

// Kind discriminates what a finished (or finished-enough) message contains.
type Kind int

const (
	KindPlainText Kind = iota
	KindWeather
	KindLocationList
)

func (k Kind) String() string {
	switch k {
	case KindWeather:
		return "weather"
	case KindLocationList:
		return "locations"
	default:
		return "text"
	}
}

// Intent is the classified view of one message. Exactly one variant applies:
// a weather intent never carries location JSON even when a locations marker is
// also present in the text, so the mutual-exclusivity contract is enforced by
// construction rather than by caller discipline.
type Intent struct {
	Kind   Kind
	Parsed ParsedText
}

type classifier func(content string) (Intent, bool)

// Ordered chain: the first classifier that claims the message wins. New
// intents slot in without touching the existing branches.
var classifiers = []classifier{
	classifyWeather,
	classifyLocationList,
}

// Classify inspects a complete message buffer and returns its intent.
func Classify(content string) Intent {
	for _, fn := range classifiers {
		if intent, ok := fn(content); ok {
			return intent
		}
	}
	return Intent{Kind: KindPlainText, Parsed: ParsedText{Text: StripDanglingJSON(content)}}
}

func classifyWeather(content string) (Intent, bool) {
	city, ok := ExtractWeatherLocation(content)
	if !ok {
		return Intent{}, false
	}
	// Deliberately drop any embedded location JSON: weather wins.
	text := Split(content, LocationsMarker).Text
	return Intent{
		Kind:   KindWeather,
		Parsed: ParsedText{Text: text, WeatherLocation: city},
	}, true
}

func classifyLocationList(content string) (Intent, bool) {
	parsed := Split(content, LocationsMarker)
	if parsed.JSON == "" {
		return Intent{}, false
	}
	return Intent{Kind: KindLocationList, Parsed: parsed}, true
}

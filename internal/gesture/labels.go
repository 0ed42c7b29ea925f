package gesture

// Mode selects which label table translates gesture types into text.
// Alphabet mode fingerspells single letters; word mode emits whole words.
type Mode string

const (
	ModeAlphabet Mode = "alphabet"
	ModeWord     Mode = "word"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeAlphabet || m == ModeWord
}

// alphabetLabels maps gestures to fingerspelled letters. OKSign has no
// alphabet mapping, so those frames are ignored while fingerspelling.
var alphabetLabels = map[Type]string{
	ThumbUp:   "A",
	PeaceSign: "V",
	Pointing:  "D",
	Fist:      "S",
	OpenPalm:  "B",
}

// wordLabels maps gestures to whole words for quick emergency phrases.
var wordLabels = map[Type]string{
	ThumbUp:   "YES",
	PeaceSign: "PEACE",
	Pointing:  "YOU",
	Fist:      "STOP",
	OpenPalm:  "HELP",
	OKSign:    "OK",
}

// LabelFor returns the display label for a gesture type in the given
// mode. It returns false when the type has no mapping in that mode.
func LabelFor(m Mode, t Type) (string, bool) {
	var table map[Type]string
	switch m {
	case ModeAlphabet:
		table = alphabetLabels
	case ModeWord:
		table = wordLabels
	default:
		return "", false
	}
	label, ok := table[t]
	return label, ok
}

package textgate

// Config holds the thresholds and pattern sets the gate checks against.
type Config struct {
	MinLength           int
	MinWords            int
	CharRepeatRun       int
	WordRepeatLimit     int
	MinMeaningfulWords  int
	MeaningfulWordLen   int
	MaxPunctuationRatio float64
	MaxShoutingRatio    float64
	DigitRun            int
	SymbolRun           int
	BannedPatterns      []string
}

// Punctuation is the set counted by the punctuation density rule.
const Punctuation = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Symbols is the set whose runs are treated as keyboard mashing.
const Symbols = `!@#$%^&*`

// DefaultConfig returns the thresholds used by the contact form.
func DefaultConfig() Config {
	return Config{
		MinLength:           10,
		MinWords:            3,
		CharRepeatRun:       5,
		WordRepeatLimit:     2,
		MinMeaningfulWords:  2,
		MeaningfulWordLen:   3,
		MaxPunctuationRatio: 0.3,
		MaxShoutingRatio:    0.5,
		DigitRun:            4,
		SymbolRun:           3,
		BannedPatterns:      []string{"asdfgh", "qwerty", "zxcvbn", "123456", "abcdef"},
	}
}

// Package textgate classifies free text from the contact form as acceptable
// or gibberish. Every rule is checked so the caller can show all problems at
// once.
package textgate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Messages appended by the individual rules, in evaluation order.
const (
	MsgTooShort       = "Message must be at least 10 characters long."
	MsgTooFewWords    = "Message must contain at least 3 words."
	MsgRepeatedChars  = "Message contains too many repeated characters."
	MsgRepeatedWords  = "Message contains too many repeated words."
	MsgRandomSequence = "Message contains random character sequences."
	MsgRandomNumbers  = "Message contains random number sequences."
	MsgNotMeaningful  = "Message must contain meaningful words (3+ characters)."
	MsgTooMuchPunct   = "Message contains too much punctuation."
	MsgAvoidAllCaps   = "Please avoid typing in all capital letters."
)

var nonWordChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Result is the outcome of evaluating one string.
type Result struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// Gate evaluates text against a fixed Config. It holds no mutable state and
// is safe for concurrent use.
type Gate struct {
	cfg      Config
	patterns []*regexp.Regexp
	digits   *regexp.Regexp
	punct    *regexp.Regexp
}

var defaultGate = New(DefaultConfig())

// Evaluate checks text with the default configuration.
func Evaluate(text string) Result {
	return defaultGate.Evaluate(text)
}

// New compiles the pattern sets in cfg.
func New(cfg Config) *Gate {
	g := &Gate{cfg: cfg}

	for _, p := range cfg.BannedPatterns {
		g.patterns = append(g.patterns, regexp.MustCompile("(?i)"+regexp.QuoteMeta(p)))
	}
	if cfg.SymbolRun > 0 {
		g.patterns = append(g.patterns,
			regexp.MustCompile(fmt.Sprintf("%s{%d,}", charClass(Symbols), cfg.SymbolRun)))
	}
	if cfg.DigitRun > 0 {
		g.digits = regexp.MustCompile(fmt.Sprintf("[0-9]{%d,}", cfg.DigitRun))
	}
	g.punct = regexp.MustCompile(charClass(Punctuation))

	return g
}

// Config returns the thresholds the gate was built with.
func (g *Gate) Config() Config {
	return g.cfg
}

// Evaluate runs every rule over the cleaned text.
func (g *Gate) Evaluate(text string) Result {
	words := strings.Fields(text)
	clean := strings.Join(words, " ")
	length := utf8.RuneCountInString(clean)

	errs := make([]string, 0)

	if length < g.cfg.MinLength {
		errs = append(errs, MsgTooShort)
	}

	if len(words) < g.cfg.MinWords {
		errs = append(errs, MsgTooFewWords)
	}

	if g.cfg.CharRepeatRun > 0 && longestRun(clean) >= g.cfg.CharRepeatRun {
		errs = append(errs, MsgRepeatedChars)
	}

	if g.hasRepeatedWords(words) {
		errs = append(errs, MsgRepeatedWords)
	}

	for _, p := range g.patterns {
		if p.MatchString(clean) {
			errs = append(errs, MsgRandomSequence)
			break
		}
	}

	if g.digits != nil && g.digits.MatchString(clean) {
		errs = append(errs, MsgRandomNumbers)
	}

	meaningful := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) >= g.cfg.MeaningfulWordLen {
			meaningful++
		}
	}
	if meaningful < g.cfg.MinMeaningfulWords {
		errs = append(errs, MsgNotMeaningful)
	}

	punct := len(g.punct.FindAllStringIndex(clean, -1))
	if float64(punct) > float64(length)*g.cfg.MaxPunctuationRatio {
		errs = append(errs, MsgTooMuchPunct)
	}

	shouting := 0
	for _, w := range words {
		if w == strings.ToUpper(w) && utf8.RuneCountInString(w) > 2 {
			shouting++
		}
	}
	if float64(shouting) > float64(len(words))*g.cfg.MaxShoutingRatio {
		errs = append(errs, MsgAvoidAllCaps)
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func (g *Gate) hasRepeatedWords(words []string) bool {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		key := nonWordChars.ReplaceAllString(strings.ToLower(w), "")
		if len(key) > 2 {
			counts[key]++
		}
	}

	for _, n := range counts {
		if n > g.cfg.WordRepeatLimit {
			return true
		}
	}
	return false
}

// longestRun returns the length of the longest run of one repeated rune.
func longestRun(s string) int {
	longest, run := 0, 0
	var prev rune = -1
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// charClass builds a regexp class matching any rune of set literally. Every
// rune is escaped so '-' and ']' never form ranges.
func charClass(set string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range set {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}

package textgate_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/textgate"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "friendly message",
			text: "This is a great portfolio, I would love to connect!",
			want: []string{},
		},
		{
			name: "too short",
			text: "hi",
			want: []string{textgate.MsgTooShort, textgate.MsgTooFewWords, textgate.MsgNotMeaningful},
		},
		{
			name: "empty string",
			text: "",
			want: []string{textgate.MsgTooShort, textgate.MsgTooFewWords, textgate.MsgNotMeaningful},
		},
		{
			name: "single repeated character",
			text: "aaaaaaaaaa",
			want: []string{textgate.MsgTooFewWords, textgate.MsgRepeatedChars, textgate.MsgNotMeaningful},
		},
		{
			name: "shouted keyboard walk",
			text: "QWERTY QWERTY QWERTY QWERTY",
			want: []string{textgate.MsgRepeatedWords, textgate.MsgRandomSequence, textgate.MsgAvoidAllCaps},
		},
		{
			name: "phone number",
			text: "Call me back at 5551234 please",
			want: []string{textgate.MsgRandomNumbers},
		},
		{
			name: "symbol mashing",
			text: "Hello there friend @#$ how are you",
			want: []string{textgate.MsgRandomSequence},
		},
		{
			name: "one sequence message for several patterns",
			text: "Hello asdfgh and zxcvbn from me",
			want: []string{textgate.MsgRandomSequence},
		},
		{
			name: "repeated words ignore case and punctuation",
			text: "Hello, hello! HELLO? Nice work there",
			want: []string{textgate.MsgRepeatedWords},
		},
		{
			name: "short words may repeat",
			text: "I am so so so glad we met",
			want: []string{},
		},
		{
			name: "mostly shouting",
			text: "PLEASE CALL THEM back today",
			want: []string{textgate.MsgAvoidAllCaps},
		},
		{
			name: "four repeated characters allowed",
			text: "Hello thereeee my good friend",
			want: []string{},
		},
		{
			name: "five repeated characters",
			text: "Hello thereeeee my good friend",
			want: []string{textgate.MsgRepeatedChars},
		},
		{
			name: "three digits allowed",
			text: "Room 555 is on the left",
			want: []string{},
		},
		{
			name: "four digits",
			text: "Room 5555 is on the left",
			want: []string{textgate.MsgRandomNumbers},
		},
		{
			name: "two symbols allowed",
			text: "Hello there @# my friend",
			want: []string{},
		},
		{
			name: "three symbols",
			text: "Hello there @#$ my friend",
			want: []string{textgate.MsgRandomSequence},
		},
		{
			name: "word used twice allowed",
			text: "Hello hello my good friend",
			want: []string{},
		},
		{
			name: "word used three times",
			text: "Hello hello hello good friend",
			want: []string{textgate.MsgRepeatedWords},
		},
		{
			name: "punctuation at exactly the limit",
			text: "Wow... really? Yes!!",
			want: []string{},
		},
		{
			name: "punctuation over the limit",
			text: "Wow... really?! Yes!!",
			want: []string{textgate.MsgTooMuchPunct},
		},
		{
			name: "half the words shouted",
			text: "PLEASE CALL back soon",
			want: []string{},
		},
		{
			name: "caseless letters count as shouting",
			text: "ßßß ßßß ßßß hello",
			want: []string{textgate.MsgAvoidAllCaps},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textgate.Evaluate(tt.text)
			assert.Equal(t, tt.want, got.Errors)
			assert.Equal(t, len(tt.want) == 0, got.Valid)
		})
	}
}

func TestEvaluatePunctuation(t *testing.T) {
	t.Run("dense punctuation", func(t *testing.T) {
		got := textgate.Evaluate("Hmm?? what... really?! okay..")
		assert.False(t, got.Valid)
		assert.Contains(t, got.Errors, textgate.MsgTooMuchPunct)
	})

	t.Run("digits are not punctuation", func(t *testing.T) {
		got := textgate.Evaluate("10 20 30 40 50 60 70 80")
		assert.NotContains(t, got.Errors, textgate.MsgTooMuchPunct)
	})
}

func TestEvaluateShortInputsAlwaysFail(t *testing.T) {
	for _, text := range []string{"a", "ok ok", "  hey  ", "123456789", "a b c d e"} {
		got := textgate.Evaluate(text)
		assert.False(t, got.Valid, text)
		assert.Contains(t, got.Errors, textgate.MsgTooShort, text)
	}
}

func TestEvaluateNormalizesWhitespace(t *testing.T) {
	assert.Equal(t,
		textgate.Evaluate("hello world there"),
		textgate.Evaluate("hello   world  there"))
	assert.Equal(t,
		textgate.Evaluate("hello world there"),
		textgate.Evaluate("\n\thello world\t\tthere  "))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	text := "Looking forward to hearing from you about the role"
	first := textgate.Evaluate(text)
	assert.Equal(t, first, textgate.Evaluate(text))
	assert.True(t, first.Valid)
	assert.NotNil(t, first.Errors)
	assert.Empty(t, first.Errors)
}

func TestEvaluateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := textgate.Evaluate("QWERTY QWERTY QWERTY QWERTY")
			assert.GreaterOrEqual(t, len(got.Errors), 2)
		}()
	}
	wg.Wait()
}

func TestNewWithCustomConfig(t *testing.T) {
	cfg := textgate.DefaultConfig()
	cfg.MinWords = 1
	cfg.MinMeaningfulWords = 1
	cfg.BannedPatterns = []string{"lorem"}
	gate := textgate.New(cfg)

	require.Equal(t, cfg, gate.Config())

	assert.True(t, gate.Evaluate("Greetings!").Valid)

	got := gate.Evaluate("Lorem ipsum dolor sit amet")
	assert.Equal(t, []string{textgate.MsgRandomSequence}, got.Errors)

	assert.True(t, gate.Evaluate("qwerty keyboards are great").Valid)
	assert.Contains(t, textgate.Evaluate("qwerty keyboards are great").Errors, textgate.MsgRandomSequence)
}

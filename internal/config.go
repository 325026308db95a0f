package internal

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Config struct {
	DataFilepath     string `env:"DATA_FILEPATH,default=data/chat.xml"`
	SchemaFilepath   string `env:"SCHEMA_FILEPATH,default=schemas/chat.xsd"`
	LogLevel         string `env:"LOG_LEVEL,default=INFO"`
	MaxContentLength int    `env:"MAX_CONTENT_LENGTH,default=1000"`
	CensoredWords    string `env:"CENSORED_WORDS"`
	CharReplacement  string `env:"CHARACTER_REPLACEMENT,default=*"`
	SearchLimit      int    `env:"SEARCH_LIMIT,default=10"`
}

// Words splits CENSORED_WORDS on commas, dropping blanks.
func (c Config) Words() []string {
	return lo.Compact(lo.Map(strings.Split(c.CensoredWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_FromEnvironment(t *testing.T) {
	t.Run("should fall back to defaults", func(t *testing.T) {
		req := require.New(t)
		var config Config
		err := env.Unmarshal(env.EnvSet{}, &config)
		req.NoError(err)
		req.Equal("data/chat.xml", config.DataFilepath)
		req.Equal("schemas/chat.xsd", config.SchemaFilepath)
		req.Equal(1000, config.MaxContentLength)
		req.Equal(10, config.SearchLimit)
		req.Empty(config.Words())
	})

	t.Run("should read overrides and split the word list", func(t *testing.T) {
		req := require.New(t)
		var config Config
		err := env.Unmarshal(env.EnvSet{
			"DATA_FILEPATH":         "/tmp/other.xml",
			"MAX_CONTENT_LENGTH":    "280",
			"CENSORED_WORDS":        " badger, ,snake ",
			"CHARACTER_REPLACEMENT": "#",
		}, &config)
		req.NoError(err)
		req.Equal("/tmp/other.xml", config.DataFilepath)
		req.Equal(280, config.MaxContentLength)
		req.Equal([]string{"badger", "snake"}, config.Words())

		char, err := CharacterRune(config.CharReplacement)
		req.NoError(err)
		req.Equal('#', char)
	})

	t.Run("should refuse a replacement longer than one character", func(t *testing.T) {
		_, err := CharacterRune("**")
		require.Error(t, err)
	})
}

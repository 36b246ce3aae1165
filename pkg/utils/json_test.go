package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	t.Run("Struct é serializada com indentação", func(t *testing.T) {
		in := struct {
			Entity string `json:"entity"`
			Score  int    `json:"score"`
		}{Entity: "opportunities", Score: 100}

		out := PrettyJson(in)

		assert.Equal(t, "{\n\t\"entity\": \"opportunities\",\n\t\"score\": 100\n}", out)
	})

	t.Run("Bytes já serializados são apenas indentados", func(t *testing.T) {
		out := PrettyJson([]byte(`{"region":"EMEA"}`))

		assert.Equal(t, "{\n\t\"region\": \"EMEA\"\n}", out)
	})
}

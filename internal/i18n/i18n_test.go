package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	cases := []struct {
		in   string
		want Lang
	}{
		{"ru", RU},
		{"Русский", RU},
		{"rus tili", RU},
		{"uz", UZ},
		{"O'zbekcha", UZ},
		{"узбекский", UZ},
		{"UZB", UZ},
		{"hello", Default},
		{"", Default},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Infer(tc.in), "input %q", tc.in)
	}
}

func TestIsDone(t *testing.T) {
	assert.True(t, IsDone(RU, "Готово"))
	assert.True(t, IsDone(RU, "готов"))
	assert.True(t, IsDone(RU, "ГОТОВА"))
	assert.True(t, IsDone(UZ, "tayyor"))
	assert.True(t, IsDone(UZ, " Tayyor "))

	// Each language only accepts its own vocabulary.
	assert.False(t, IsDone(RU, "tayyor"))
	assert.False(t, IsDone(UZ, "готово"))
	assert.False(t, IsDone(RU, "готовое"))
	assert.False(t, IsDone(UZ, ""))
}

func TestParse(t *testing.T) {
	assert.Equal(t, RU, Parse("ru"))
	assert.Equal(t, UZ, Parse("uz"))
	assert.Equal(t, Default, Parse("en"))
	assert.Equal(t, RU, Parse(" RU "))
}

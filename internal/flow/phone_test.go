package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+998901234567", "+998901234567", true},
		{"998901234567", "+998901234567", true},
		{"90 123 45 67", "+901234567", true},
		{"(90) 123-45-67", "+901234567", true},
		{"123", "", false},
		{"", "", false},
		{"+12345678901234567890", "", false},
		{"abc", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizePhone(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

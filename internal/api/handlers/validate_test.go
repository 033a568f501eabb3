package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"plainaddress", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"user@", false},
		{"user name@example.com", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, validEmail(tc.email), "email %q", tc.email)
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range []string{"low", "medium", "high"} {
		assert.True(t, validPriority(p), "priority %q", p)
	}
	for _, p := range []string{"", "urgent", "LOW", "Medium", "critical"} {
		assert.False(t, validPriority(p), "priority %q", p)
	}
}

func TestCompletionRate(t *testing.T) {
	// tidak ada task sama sekali: 0, bukan NaN
	assert.Equal(t, 0.0, completionRate(0, 0))
	assert.Equal(t, 50.0, completionRate(2, 4))
	assert.Equal(t, 100.0, completionRate(5, 5))
	// dibulatkan dua desimal
	assert.Equal(t, 33.33, completionRate(1, 3))
	assert.Equal(t, 66.67, completionRate(2, 3))
}

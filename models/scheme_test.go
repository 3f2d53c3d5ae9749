package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemeIsActive(t *testing.T) {
	cases := []struct {
		deadline string
		want     bool
	}{
		{"Ongoing", true},
		{"2025-10-31", true},
		{"Seasonal", true},
		{"Closed", false},
		{"", false},
	}

	for _, tc := range cases {
		s := Scheme{ID: "s", Deadline: tc.deadline}
		assert.Equal(t, tc.want, s.IsActive(), "deadline %q", tc.deadline)
	}
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"present", "absent", "late", "excused"} {
		assert.True(t, ValidStatus(s), "%q must be accepted", s)
	}
	for _, s := range []string{"", "tardy", "Present", "half_day"} {
		assert.False(t, ValidStatus(s), "%q must be rejected", s)
	}
}

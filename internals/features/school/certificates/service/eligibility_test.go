package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecidePerfectAttendance(t *testing.T) {
	t.Run("no records means not eligible", func(t *testing.T) {
		res := DecidePerfectAttendance(0, 0)
		assert.False(t, res.CanGenerate)
		assert.Contains(t, res.Reason, "No attendance records")
	})

	t.Run("any absence disqualifies", func(t *testing.T) {
		res := DecidePerfectAttendance(40, 1)
		assert.False(t, res.CanGenerate)
		assert.Contains(t, res.Reason, "1 absence")
	})

	t.Run("late and excused do not disqualify", func(t *testing.T) {
		// 40 rows, none absent — some may be late or excused
		res := DecidePerfectAttendance(40, 0)
		assert.True(t, res.CanGenerate)
		assert.Empty(t, res.Reason)
	})
}

func TestDecideHonorRoll(t *testing.T) {
	t.Run("no grades", func(t *testing.T) {
		res := DecideHonorRoll(0, 0, 8)
		assert.False(t, res.CanGenerate)
	})

	t.Run("incomplete subject coverage", func(t *testing.T) {
		res := DecideHonorRoll(96, 5, 8)
		assert.False(t, res.CanGenerate)
		assert.Contains(t, res.Reason, "5 of 8")
	})

	t.Run("below threshold", func(t *testing.T) {
		res := DecideHonorRoll(89.99, 8, 8)
		assert.False(t, res.CanGenerate)
	})

	t.Run("boundary qualifies", func(t *testing.T) {
		res := DecideHonorRoll(90.0, 8, 8)
		assert.True(t, res.CanGenerate)
	})

	t.Run("zero expected falls back to graded coverage", func(t *testing.T) {
		// expected=0 means the curriculum pivot was empty and the fallback
		// already equals the graded count
		res := DecideHonorRoll(92.5, 6, 0)
		assert.True(t, res.CanGenerate)
	})
}

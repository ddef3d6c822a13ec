package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, -2.5, Lerp(-5, 0, 0.5))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3.2))
	assert.Equal(t, -1.0, Sign(-0.01))
	assert.Equal(t, 0.0, Sign(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
	assert.Equal(t, 0.0, Clamp(-1, 0, 2))
	assert.Equal(t, 1.5, Clamp(1.5, 0, 2))
}

func TestMoveToward(t *testing.T) {
	assert.Equal(t, 1.0, MoveToward(0, 5, 1), "steps by maxDelta")
	assert.Equal(t, -1.0, MoveToward(0, -5, 1), "steps toward negative targets")
	assert.Equal(t, 5.0, MoveToward(4.5, 5, 1), "snaps instead of overshooting")
	assert.Equal(t, 5.0, MoveToward(5, 5, 1))
}

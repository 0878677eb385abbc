package dto_test

import (
	"testing"

	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestWantsModeration(t *testing.T) {
	title := "New Title"
	status := "approved"
	featured := true

	assert.False(t, (&dto.UpdateGameRequest{}).WantsModeration())
	assert.False(t, (&dto.UpdateGameRequest{Title: &title}).WantsModeration())
	assert.True(t, (&dto.UpdateGameRequest{Status: &status}).WantsModeration())
	assert.True(t, (&dto.UpdateGameRequest{Featured: &featured}).WantsModeration())
}

package models_test

import (
	"testing"

	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName_CutsEmailStyleUsernames(t *testing.T) {
	u := &models.User{Username: "alice@example.com"}
	assert.Equal(t, "alice", u.DisplayName())
}

func TestDisplayName_PlainUsernameUnchanged(t *testing.T) {
	u := &models.User{Username: "bob_the_dev"}
	assert.Equal(t, "bob_the_dev", u.DisplayName())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, models.ValidStatus(models.StatusPending))
	assert.True(t, models.ValidStatus(models.StatusApproved))
	assert.True(t, models.ValidStatus(models.StatusRejected))
	assert.False(t, models.ValidStatus("published"))
	assert.False(t, models.ValidStatus(""))
}

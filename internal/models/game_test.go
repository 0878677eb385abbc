package models_test

import (
	"testing"

	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenshots_RoundTrip(t *testing.T) {
	g := &models.Game{}
	urls := []string{"/uploads/a1.png", "/uploads/b2.webp"}

	require.NoError(t, g.SetScreenshots(urls))
	assert.Equal(t, urls, g.ScreenshotList())
}

func TestScreenshotList_InvalidJSONReturnsNil(t *testing.T) {
	g := &models.Game{Screenshots: []byte("not json")}
	assert.Nil(t, g.ScreenshotList())
}

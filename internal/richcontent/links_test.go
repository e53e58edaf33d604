package richcontent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/calmaria/maria-bot/internal/models"
)

func TestClassifyBareURLs(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantTitle  string
		wantAction string
		wantStyle  models.ButtonStyle
		wantIcon   models.ButtonIcon
	}{
		{
			name:       "video domain",
			text:       "Mira https://youtube.com/watch?v=abc cuando puedas",
			wantTitle:  "Ver Video",
			wantAction: "open_video:https://youtube.com/watch?v=abc",
			wantStyle:  models.StylePrimary,
			wantIcon:   models.IconPlay,
		},
		{
			name:       "short video domain",
			text:       "Te dejo https://youtu.be/abc",
			wantTitle:  "Ver Video",
			wantAction: "open_video:https://youtu.be/abc",
			wantStyle:  models.StylePrimary,
			wantIcon:   models.IconPlay,
		},
		{
			name:       "document domain",
			text:       "La guía está en https://docs.google.com/document/d/1",
			wantTitle:  "Ver Documento",
			wantAction: "open_link:https://docs.google.com/document/d/1",
			wantStyle:  models.StyleInfo,
			wantIcon:   models.IconInfo,
		},
		{
			name:       "generic domain",
			text:       "Visita https://calmaria.app/recursos",
			wantTitle:  "Abrir Enlace",
			wantAction: "open_link:https://calmaria.app/recursos",
			wantStyle:  models.StyleSecondary,
			wantIcon:   models.IconInfo,
		},
		{
			name:       "trailing punctuation trimmed",
			text:       "Visita https://calmaria.app/recursos.",
			wantTitle:  "Abrir Enlace",
			wantAction: "open_link:https://calmaria.app/recursos",
			wantStyle:  models.StyleSecondary,
			wantIcon:   models.IconInfo,
		},
	}

	classifier := NewLinkClassifier(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := models.NewRichContent()
			classifier.Classify(tt.text, rc)

			require.Len(t, rc.Buttons, 1)
			btn := rc.Buttons[0]
			assert.Equal(t, tt.wantTitle, btn.Title)
			assert.Equal(t, tt.wantAction, btn.Action.String())
			assert.Equal(t, tt.wantStyle, btn.Style)
			assert.Equal(t, tt.wantIcon, btn.Icon)
		})
	}
}

func TestClassifySkipsKnownURLs(t *testing.T) {
	rc := models.NewRichContent()
	rc.Add(models.Link{Title: "Guía", URL: "https://a.com/g", Category: models.LinkGuide})

	classifier := NewLinkClassifier(zap.NewNop())
	classifier.Classify("visita https://a.com/g", rc)

	assert.Len(t, rc.Links, 1)
	assert.Empty(t, rc.Buttons, "explicit link URL must not also synthesize a button")
}

func TestClassifyDistinctURLsOnce(t *testing.T) {
	rc := models.NewRichContent()

	classifier := NewLinkClassifier(zap.NewNop())
	classifier.Classify("ve a https://a.com/x y también https://a.com/x y luego https://b.com/y", rc)

	require.Len(t, rc.Buttons, 2)
	assert.Equal(t, "open_link:https://a.com/x", rc.Buttons[0].Action.String())
	assert.Equal(t, "open_link:https://b.com/y", rc.Buttons[1].Action.String())
}

func TestClassifyLeavesTextAlone(t *testing.T) {
	text := "Visita https://calmaria.app/recursos hoy"
	rc := models.NewRichContent()

	NewLinkClassifier(zap.NewNop()).Classify(text, rc)

	// The residual text keeps the bare URL; only rich content grows.
	assert.Equal(t, "Visita https://calmaria.app/recursos hoy", text)
	assert.Len(t, rc.Buttons, 1)
}

package richcontent

import (
	"regexp"
	"strings"

	"github.com/calmaria/maria-bot/internal/models"
	"go.uber.org/zap"
)

var bareURLPattern = regexp.MustCompile(`https?://\S+`)

// Domain markers checked in order; first match wins.
var videoMarkers = []string{"youtube.com", "youtu.be", "vimeo.com", "dailymotion.com"}
var documentMarkers = []string{"docs.google.com", "drive.google.com", "notion.so", "dropbox.com", ".pdf"}

// LinkClassifier scans residual text for bare URLs that no explicit
// directive already covers and synthesizes one button per distinct URL.
// The text itself is left untouched.
type LinkClassifier struct {
	logger *zap.Logger
}

func NewLinkClassifier(logger *zap.Logger) *LinkClassifier {
	return &LinkClassifier{logger: logger}
}

// Classify appends a synthesized button to rc for every new bare URL in
// text. URLs already present in rc are skipped by exact string match.
func (c *LinkClassifier) Classify(text string, rc *models.RichContent) {
	known := rc.URLs()
	for _, raw := range bareURLPattern.FindAllString(text, -1) {
		url := strings.TrimRight(raw, ".,;:!?)")
		if url == "" {
			continue
		}
		if _, dup := known[url]; dup {
			continue
		}
		known[url] = struct{}{}

		btn := buttonForURL(url)
		c.logger.Debug("Synthesized button for bare URL",
			zap.String("url", url),
			zap.String("title", btn.Title))
		rc.Add(btn)
	}
}

func buttonForURL(url string) models.Button {
	lower := strings.ToLower(url)
	for _, marker := range videoMarkers {
		if strings.Contains(lower, marker) {
			return models.Button{
				Title:  "Ver Video",
				Action: models.OpenVideo(url),
				Style:  models.StylePrimary,
				Icon:   models.IconPlay,
			}
		}
	}
	for _, marker := range documentMarkers {
		if strings.Contains(lower, marker) {
			return models.Button{
				Title:  "Ver Documento",
				Action: models.OpenLink(url),
				Style:  models.StyleInfo,
				Icon:   models.IconInfo,
			}
		}
	}
	return models.Button{
		Title:  "Abrir Enlace",
		Action: models.OpenLink(url),
		Style:  models.StyleSecondary,
		Icon:   models.IconInfo,
	}
}

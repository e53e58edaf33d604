package richcontent

import (
	"fmt"
	"strings"

	"github.com/calmaria/maria-bot/internal/models"
	"go.uber.org/zap"
)

// Directive tag keywords recognized in agent text.
const (
	keywordImage   = "IMAGEN"
	keywordLink    = "ENLACE"
	keywordButton  = "BOTON"
	keywordCard    = "TARJETA"
	keywordVideo   = "SUGERIR_VIDEO"
	keywordClosing = "CIERRE_DE_SESION"
)

// ParseResult is the outcome of one pass over agent text: the residual
// text with all recognized tag spans removed, every directive in source
// order, and whether an explicit closing tag was present.
type ParseResult struct {
	Text       string
	Directives []models.Directive
	Closing    bool
}

// Parser extracts bracketed directive tags from free text. Malformed tags
// are logged and dropped; they never abort the rest of the text.
type Parser struct {
	logger *zap.Logger
}

func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// tag is one recognized bracket span in the source text.
type tag struct {
	keyword    string
	body       string
	start, end int
}

// scanTags walks the text left to right collecting recognized tag spans.
// Unrecognized bracket content is left alone.
func scanTags(text string) []tag {
	var tags []tag
	pos := 0
	for pos < len(text) {
		open := strings.Index(text[pos:], "[")
		if open < 0 {
			break
		}
		open += pos
		closing := strings.Index(text[open:], "]")
		if closing < 0 {
			break
		}
		closing += open

		inner := text[open+1 : closing]
		keyword, body, hasBody := strings.Cut(inner, ":")
		keyword = strings.TrimSpace(keyword)

		switch keyword {
		case keywordImage, keywordLink, keywordButton, keywordCard, keywordVideo:
			if hasBody {
				tags = append(tags, tag{keyword: keyword, body: body, start: open, end: closing + 1})
				pos = closing + 1
				continue
			}
		case keywordClosing:
			if !hasBody {
				tags = append(tags, tag{keyword: keyword, start: open, end: closing + 1})
				pos = closing + 1
				continue
			}
		}
		// Not a directive tag; keep scanning after the bracket.
		pos = open + 1
	}
	return tags
}

// Parse extracts all directives from text. The residual text equals the
// input with exactly the recognized tag spans removed; whitespace is only
// collapsed at the joins a removed span leaves behind, the rest of the
// text keeps its original spacing.
func (p *Parser) Parse(text string) ParseResult {
	result := ParseResult{Text: text}

	tags := scanTags(text)
	if len(tags) == 0 {
		return result
	}

	segments := make([]string, 0, len(tags)+1)
	last := 0
	for _, t := range tags {
		segments = append(segments, text[last:t.start])
		last = t.end

		if t.keyword == keywordClosing {
			result.Closing = true
			continue
		}

		directives, err := p.buildDirectives(t)
		if err != nil {
			p.logger.Warn("Discarding malformed directive tag",
				zap.String("keyword", t.keyword),
				zap.String("body", t.body),
				zap.Error(err))
			continue
		}
		result.Directives = append(result.Directives, directives...)
	}
	segments = append(segments, text[last:])

	result.Text = joinSegments(segments)
	return result
}

// buildDirectives validates and constructs the typed value(s) for one tag.
// SUGERIR_VIDEO expands into three directives for frontend compatibility.
func (p *Parser) buildDirectives(t tag) ([]models.Directive, error) {
	switch t.keyword {
	case keywordImage:
		img, err := newImage(splitFields(t.body, ","))
		if err != nil {
			return nil, err
		}
		return []models.Directive{img}, nil
	case keywordLink:
		link, err := newLink(splitFields(t.body, ","))
		if err != nil {
			return nil, err
		}
		return []models.Directive{link}, nil
	case keywordButton:
		btn, err := newButton(splitFields(t.body, ","))
		if err != nil {
			return nil, err
		}
		return []models.Directive{btn}, nil
	case keywordCard:
		card, err := newCard(splitFields(t.body, ","))
		if err != nil {
			return nil, err
		}
		return []models.Directive{card}, nil
	case keywordVideo:
		return newVideoSuggestion(t.body)
	}
	return nil, fmt.Errorf("unknown keyword %q", t.keyword)
}

// splitFields splits a tag body on sep and trims each field. Empty fields
// are kept: an empty string between two commas is a placeholder for an
// omitted middle optional field.
func splitFields(body, sep string) []string {
	parts := strings.Split(body, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// field returns the i-th field or "" when fewer fields were written.
func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func validURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func newImage(fields []string) (models.Image, error) {
	title := field(fields, 0)
	url := field(fields, 1)
	if title == "" || url == "" {
		return models.Image{}, fmt.Errorf("image requires title and url")
	}
	if !validURL(url) {
		return models.Image{}, fmt.Errorf("invalid image url %q", url)
	}
	alt := field(fields, 2)
	if alt == "" {
		alt = title
	}
	return models.Image{
		Title:   title,
		URL:     url,
		Alt:     alt,
		Caption: field(fields, 3),
	}, nil
}

func newLink(fields []string) (models.Link, error) {
	title := field(fields, 0)
	url := field(fields, 1)
	if title == "" || url == "" {
		return models.Link{}, fmt.Errorf("link requires title and url")
	}
	if !validURL(url) {
		return models.Link{}, fmt.Errorf("invalid link url %q", url)
	}
	return models.Link{
		Title:       title,
		URL:         url,
		Description: field(fields, 2),
		Category:    linkCategory(field(fields, 3)),
	}, nil
}

func newButton(fields []string) (models.Button, error) {
	title := field(fields, 0)
	action := field(fields, 1)
	if title == "" || action == "" {
		return models.Button{}, fmt.Errorf("button requires title and action")
	}
	return models.Button{
		Title:  title,
		Action: models.ParseAction(action),
		Style:  buttonStyle(field(fields, 2)),
		Icon:   buttonIcon(field(fields, 3)),
	}, nil
}

func newCard(fields []string) (models.Card, error) {
	title := field(fields, 0)
	content := field(fields, 1)
	if title == "" || content == "" {
		return models.Card{}, fmt.Errorf("card requires title and content")
	}

	category := field(fields, 2)
	stepsField := ""
	switch {
	case len(fields) >= 4:
		// Anything past the category belongs to the step list.
		stepsField = strings.Join(fields[3:], ", ")
	case strings.Contains(category, "|") || (category != "" && !knownCardCategory(category)):
		// Third field written without a category: treat it as the steps.
		stepsField = category
		category = ""
	}

	return models.Card{
		Title:    title,
		Content:  content,
		Category: cardCategory(category),
		Steps:    splitSteps(stepsField),
	}, nil
}

// newVideoSuggestion accepts both the comma and the legacy pipe form and
// expands into the suggestion itself, an open_video button, and an
// explanatory card.
func newVideoSuggestion(body string) ([]models.Directive, error) {
	sep := ","
	if strings.Contains(body, "|") {
		sep = "|"
	}
	fields := splitFields(body, sep)
	title := field(fields, 0)
	url := field(fields, 1)
	if title == "" || url == "" {
		return nil, fmt.Errorf("video suggestion requires title and url")
	}
	if !validURL(url) {
		return nil, fmt.Errorf("invalid video url %q", url)
	}

	return []models.Directive{
		models.VideoSuggestion{Title: title, URL: url},
		models.Button{
			Title:  "Ver Video",
			Action: models.OpenVideo(url),
			Style:  models.StylePrimary,
			Icon:   models.IconPlay,
		},
		models.Card{
			Title:    title,
			Content:  fmt.Sprintf("Te sugiero ver este video: %s. Puede ayudarte con lo que estamos trabajando.", title),
			Category: models.CardInfo,
		},
	}, nil
}

func splitSteps(s string) []string {
	if s == "" {
		return nil
	}
	var steps []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			steps = append(steps, part)
		}
	}
	return steps
}

func linkCategory(s string) models.LinkCategory {
	switch models.LinkCategory(s) {
	case models.LinkArticle, models.LinkResource, models.LinkGuide, models.LinkExternal:
		return models.LinkCategory(s)
	}
	return models.LinkExternal
}

func buttonStyle(s string) models.ButtonStyle {
	switch models.ButtonStyle(s) {
	case models.StylePrimary, models.StyleSecondary, models.StyleSuccess,
		models.StyleWarning, models.StyleInfo:
		return models.ButtonStyle(s)
	}
	return models.StylePrimary
}

func buttonIcon(s string) models.ButtonIcon {
	switch models.ButtonIcon(s) {
	case models.IconPlay, models.IconCheck, models.IconInfo, models.IconActivity:
		return models.ButtonIcon(s)
	}
	return ""
}

func knownCardCategory(s string) bool {
	switch models.CardCategory(s) {
	case models.CardTip, models.CardTechnique, models.CardExercise,
		models.CardInfo, models.CardWarning:
		return true
	}
	return false
}

func cardCategory(s string) models.CardCategory {
	if knownCardCategory(s) {
		return models.CardCategory(s)
	}
	return models.CardInfo
}

// joinSegments concatenates the text pieces around removed tag spans.
// At each join the whitespace hugging the span collapses to a single
// space, or to a newline when the span sat next to a line break. A span
// at the very start or end of the text takes its adjacent whitespace
// with it.
func joinSegments(segments []string) string {
	out := segments[0]
	for _, seg := range segments[1:] {
		left := strings.TrimRight(out, " \t\n")
		right := strings.TrimLeft(seg, " \t\n")
		sep := ""
		if left != "" && right != "" {
			sep = " "
			gap := out[len(left):] + seg[:len(seg)-len(right)]
			if strings.ContainsRune(gap, '\n') {
				sep = "\n"
			}
		}
		out = left + sep + right
	}
	return out
}

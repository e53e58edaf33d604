package models

import (
	"encoding/json"
	"strings"
)

// Link categories understood by the rendering frontend.
type LinkCategory string

const (
	LinkArticle  LinkCategory = "article"
	LinkResource LinkCategory = "resource"
	LinkGuide    LinkCategory = "guide"
	LinkExternal LinkCategory = "external"
)

// Button styles understood by the rendering frontend.
type ButtonStyle string

const (
	StylePrimary   ButtonStyle = "primary"
	StyleSecondary ButtonStyle = "secondary"
	StyleSuccess   ButtonStyle = "success"
	StyleWarning   ButtonStyle = "warning"
	StyleInfo      ButtonStyle = "info"
)

type ButtonIcon string

const (
	IconPlay     ButtonIcon = "play"
	IconCheck    ButtonIcon = "check"
	IconInfo     ButtonIcon = "info"
	IconActivity ButtonIcon = "activity"
)

type CardCategory string

const (
	CardTip       CardCategory = "tip"
	CardTechnique CardCategory = "technique"
	CardExercise  CardCategory = "exercise"
	CardInfo      CardCategory = "info"
	CardWarning   CardCategory = "warning"
)

// ActionKind discriminates what pressing a button should do. The string
// protocol ("open_video:<url>", "open_link:<url>", anything else opaque)
// only exists at the JSON edge.
type ActionKind int

const (
	ActionCustom ActionKind = iota
	ActionOpenLink
	ActionOpenVideo
)

const (
	openLinkPrefix  = "open_link:"
	openVideoPrefix = "open_video:"
)

// Action is a button's dispatch target. Payload is a URL for OpenLink and
// OpenVideo, an opaque application identifier for Custom.
type Action struct {
	Kind    ActionKind
	Payload string
}

func OpenLink(url string) Action  { return Action{Kind: ActionOpenLink, Payload: url} }
func OpenVideo(url string) Action { return Action{Kind: ActionOpenVideo, Payload: url} }
func CustomAction(id string) Action {
	return Action{Kind: ActionCustom, Payload: id}
}

// ParseAction decodes the wire form back into a discriminated value.
func ParseAction(s string) Action {
	switch {
	case strings.HasPrefix(s, openVideoPrefix):
		return OpenVideo(strings.TrimPrefix(s, openVideoPrefix))
	case strings.HasPrefix(s, openLinkPrefix):
		return OpenLink(strings.TrimPrefix(s, openLinkPrefix))
	default:
		return CustomAction(s)
	}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionOpenVideo:
		return openVideoPrefix + a.Payload
	case ActionOpenLink:
		return openLinkPrefix + a.Payload
	default:
		return a.Payload
	}
}

func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = ParseAction(s)
	return nil
}

// Directive is a single typed rich-content instruction extracted from
// agent text. Implementations: Image, Link, Button, Card, VideoSuggestion.
type Directive interface {
	directive()
}

type Image struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

type Link struct {
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	Description string       `json:"description,omitempty"`
	Category    LinkCategory `json:"category"`
}

type Button struct {
	Title  string      `json:"title"`
	Action Action      `json:"action"`
	Style  ButtonStyle `json:"style"`
	Icon   ButtonIcon  `json:"icon,omitempty"`
}

type Card struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Category CardCategory `json:"category"`
	Steps    []string     `json:"steps,omitempty"`
}

// VideoSuggestion is the legacy single-video variant kept for frontend
// compatibility. Parsing one also synthesizes a Button and a Card.
type VideoSuggestion struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (Image) directive()           {}
func (Link) directive()            {}
func (Button) directive()          {}
func (Card) directive()            {}
func (VideoSuggestion) directive() {}

// RichContent aggregates every directive produced for one response.
// Within each sequence the order equals order of first appearance in the
// source text; synthesized directives come after explicit ones.
type RichContent struct {
	Images         []Image          `json:"images"`
	Links          []Link           `json:"links"`
	Buttons        []Button         `json:"buttons"`
	Cards          []Card           `json:"cards"`
	SuggestedVideo *VideoSuggestion `json:"suggestedVideo,omitempty"`
}

func NewRichContent() *RichContent {
	return &RichContent{
		Images:  []Image{},
		Links:   []Link{},
		Buttons: []Button{},
		Cards:   []Card{},
	}
}

// Add routes a directive to its sequence. A second VideoSuggestion is
// ignored; the aggregate holds at most one.
func (rc *RichContent) Add(d Directive) {
	switch v := d.(type) {
	case Image:
		rc.Images = append(rc.Images, v)
	case Link:
		rc.Links = append(rc.Links, v)
	case Button:
		rc.Buttons = append(rc.Buttons, v)
	case Card:
		rc.Cards = append(rc.Cards, v)
	case VideoSuggestion:
		if rc.SuggestedVideo == nil {
			rc.SuggestedVideo = &v
		}
	}
}

// IsEmpty reports whether no directive of any kind was produced.
func (rc *RichContent) IsEmpty() bool {
	return len(rc.Images) == 0 && len(rc.Links) == 0 &&
		len(rc.Buttons) == 0 && len(rc.Cards) == 0 && rc.SuggestedVideo == nil
}

// URLs returns every URL referenced by an explicit directive, used by the
// link classifier for exact-string dedupe.
func (rc *RichContent) URLs() map[string]struct{} {
	urls := make(map[string]struct{})
	for _, img := range rc.Images {
		urls[img.URL] = struct{}{}
	}
	for _, l := range rc.Links {
		urls[l.URL] = struct{}{}
	}
	for _, b := range rc.Buttons {
		if b.Action.Kind != ActionCustom {
			urls[b.Action.Payload] = struct{}{}
		}
	}
	if rc.SuggestedVideo != nil {
		urls[rc.SuggestedVideo.URL] = struct{}{}
	}
	return urls
}

// EnrichedMessage is the output contract consumed by the rendering
// frontend: the tag-stripped text plus all structured directives.
type EnrichedMessage struct {
	Text        string       `json:"text"`
	RichContent *RichContent `json:"richContent"`
}

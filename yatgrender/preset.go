package yatgrender

import (
	"fmt"
	"maps"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

// Preset selects the output markup: default templates and escaping rules.
type Preset uint8

const (
	PresetHTML Preset = iota
	PresetMarkdownV2
)

func (p Preset) String() string {
	switch p {
	case PresetHTML:
		return "html"
	case PresetMarkdownV2:
		return "markdownv2"
	default:
		return "unknown"
	}
}

func (p *Preset) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "html":
		*p = PresetHTML
	case "markdownv2", "markdown_v2":
		*p = PresetMarkdownV2
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPreset, text)
	}

	return nil
}

type markup struct {
	templates  map[yatgtypes.EntityType]string
	escapeText func(string) string
	escapeURL  func(string) string
}

const (
	htmlLink     = `<a href="{url}">{text}</a>`
	markdownLink = `[{text}]({url})`
)

var (
	htmlText = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	htmlAttr = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

	markdownURL = strings.NewReplacer(`\`, `\\`, ")", `\)`)
)

func escapeMarkdownV2(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

var markups = map[Preset]markup{
	PresetHTML: {
		templates: map[yatgtypes.EntityType]string{
			yatgtypes.EntityBold:     "<b>{text}</b>",
			yatgtypes.EntityItalic:   "<i>{text}</i>",
			yatgtypes.EntityPre:      "<pre>{text}</pre>",
			yatgtypes.EntityCode:     "<code>{text}</code>",
			yatgtypes.EntityURL:      htmlLink,
			yatgtypes.EntityTextLink: htmlLink,
			yatgtypes.EntityMention:  htmlLink,
		},
		escapeText: htmlText.Replace,
		escapeURL:  htmlAttr.Replace,
	},
	PresetMarkdownV2: {
		templates: map[yatgtypes.EntityType]string{
			yatgtypes.EntityBold:     "*{text}*",
			yatgtypes.EntityItalic:   "_{text}_",
			yatgtypes.EntityPre:      "```{language}\n{text}```",
			yatgtypes.EntityCode:     "`{text}`",
			yatgtypes.EntityURL:      markdownLink,
			yatgtypes.EntityTextLink: markdownLink,
			yatgtypes.EntityMention:  markdownLink,
		},
		escapeText: escapeMarkdownV2,
		escapeURL:  markdownURL.Replace,
	},
}

// Templates returns a copy of the default templates of p.
func (p Preset) Templates() map[yatgtypes.EntityType]string {
	return maps.Clone(markups[p].templates)
}

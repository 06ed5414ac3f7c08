// Package yatgrender turns message text plus its entities into markup
// ready to send back with a parse mode, HTML by default.
//
// Entity offsets and lengths count UTF-16 code units, so text is converted
// to UTF-16 before slicing and back afterwards. Text between entities is
// escaped for the target markup; entity text is escaped and placed into the
// template of its type.
//
//	html, err := yatgrender.Render(*message.Text, message.Entities, nil)
//
// Entities are rendered in the order given and are expected to be
// ascending and non-overlapping, as the Bot API sends them. Use
// WithValidation or Validate to check that first.
package yatgrender

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
	"github.com/YaCodeDev/GoYaTgBotAPI/yahash"
	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

// Mode decides what happens to entity ranges that do not fit the text.
type Mode uint8

const (
	// Strict rejects them with ErrInvalidEntityRange.
	Strict Mode = iota
	// Lenient clamps them to the text and logs a warning.
	Lenient
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "unknown"
	}
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "strict":
		*m = Strict
	case "lenient":
		*m = Lenient
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, text)
	}

	return nil
}

const (
	placeholderText     = "{text}"
	placeholderURL      = "{url}"
	placeholderLanguage = "{language}"
)

type Renderer struct {
	log       yalogger.Logger
	mode      Mode
	preset    Preset
	markup    markup
	templates map[yatgtypes.EntityType]string
	overrides map[yatgtypes.EntityType]string
	validate  bool

	fingerprint string
}

type Option func(*Renderer)

func WithLogger(log yalogger.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

func WithMode(mode Mode) Option {
	return func(r *Renderer) {
		r.mode = mode
	}
}

func WithPreset(preset Preset) Option {
	return func(r *Renderer) {
		r.preset = preset
	}
}

// WithTemplate overrides the template of one entity type. An empty
// template makes the type pass its text through.
func WithTemplate(entityType yatgtypes.EntityType, template string) Option {
	return func(r *Renderer) {
		r.overrides[entityType] = template
	}
}

func WithTemplates(templates map[yatgtypes.EntityType]string) Option {
	return func(r *Renderer) {
		for entityType, template := range templates {
			r.overrides[entityType] = template
		}
	}
}

// WithValidation makes Render run Validate before rendering.
func WithValidation() Option {
	return func(r *Renderer) {
		r.validate = true
	}
}

// New creates a strict HTML renderer unless options say otherwise.
// Overrides are applied on top of the preset templates whatever the
// option order.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		mode:      Strict,
		preset:    PresetHTML,
		overrides: make(map[yatgtypes.EntityType]string),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.log == nil {
		r.log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	r.log = r.log.WithField(yalogger.KeyComponent, "renderer")

	if _, ok := markups[r.preset]; !ok {
		r.log.Warnf("Unknown preset %d, using %s", r.preset, PresetHTML)

		r.preset = PresetHTML
	}

	r.markup = markups[r.preset]
	r.templates = r.preset.Templates()

	for entityType, template := range r.overrides {
		if template == "" {
			delete(r.templates, entityType)

			continue
		}

		r.templates[entityType] = template
	}

	r.fingerprint = r.computeFingerprint()

	return r
}

var defaultRenderer = New()

// Render renders text with the default strict HTML renderer, replacing
// templates with overrides where given.
//
// Example usage:
//
//	html, err := yatgrender.Render("Hello bold world", []yatgtypes.MessageEntity{
//		{Type: yatgtypes.EntityBold, Offset: 6, Length: 4},
//	}, nil)
//	// "Hello <b>bold</b> world"
func Render(
	text string,
	entities []yatgtypes.MessageEntity,
	overrides map[yatgtypes.EntityType]string,
) (string, yaerrors.Error) {
	if len(overrides) == 0 {
		return defaultRenderer.Render(text, entities)
	}

	return New(WithLogger(defaultRenderer.log), WithTemplates(overrides)).Render(text, entities)
}

func (r *Renderer) Mode() Mode {
	return r.mode
}

func (r *Renderer) Preset() Preset {
	return r.preset
}

// Fingerprint identifies the output this renderer produces for a given
// input: renderers with equal fingerprints render identically.
func (r *Renderer) Fingerprint() string {
	return r.fingerprint
}

func (r *Renderer) computeFingerprint() string {
	keys := make([]string, 0, len(r.templates))
	for entityType := range r.templates {
		keys = append(keys, string(entityType))
	}

	slices.Sort(keys)

	parts := []string{r.mode.String(), r.preset.String(), strconv.FormatBool(r.validate)}
	for _, key := range keys {
		parts = append(parts, key, r.templates[yatgtypes.EntityType(key)])
	}

	return fmt.Sprintf("%016x", yahash.FNV64Strings(parts...))
}

// RenderText renders message.Text with message.Entities. A message
// without text renders to "".
func (r *Renderer) RenderText(message *yatgtypes.Message) (string, yaerrors.Error) {
	if message == nil || message.Text == nil {
		return "", nil
	}

	return r.Render(*message.Text, message.Entities)
}

// RenderCaption is RenderText for the caption of a media message.
func (r *Renderer) RenderCaption(message *yatgtypes.Message) (string, yaerrors.Error) {
	if message == nil || message.Caption == nil {
		return "", nil
	}

	return r.Render(*message.Caption, message.CaptionEntities)
}

// Render renders text with entities. With no entities text is returned
// unchanged and unescaped.
func (r *Renderer) Render(text string, entities []yatgtypes.MessageEntity) (string, yaerrors.Error) {
	if len(entities) == 0 {
		return text, nil
	}

	units := toUTF16(text)

	if r.validate {
		if err := validate(units, entities); err != nil {
			return "", err
		}
	}

	var out strings.Builder

	out.Grow(len(text) + len(entities)*16)

	cursor := 0

	for i := range entities {
		entity := &entities[i]

		from, to, err := r.span(units, i, entity)
		if err != nil {
			return "", err
		}

		if from > cursor {
			out.WriteString(r.markup.escapeText(units.slice(cursor, from)))
			cursor = from
		}

		rendered, err := r.renderEntity(i, entity, units.slice(from, to))
		if err != nil {
			return "", err
		}

		out.WriteString(rendered)

		cursor += to - from
	}

	if cursor < units.Len() {
		out.WriteString(r.markup.escapeText(units.slice(cursor, units.Len())))
	}

	return out.String(), nil
}

// span returns the UTF-16 range of entity i, checked or clamped per mode.
func (r *Renderer) span(units utf16Text, i int, entity *yatgtypes.MessageEntity) (int, int, yaerrors.Error) {
	n := units.Len()
	from, to := entity.Offset, entity.End()

	if err := checkRange(units, i, entity); err != nil {
		if r.mode == Strict {
			return 0, 0, err
		}

		from = min(max(from, 0), n)
		to = min(max(to, from), n)

		r.log.Warnf(
			"Entity %d (%s) range [%d, %d) clamped to [%d, %d) of %d code units",
			i, entity.Type, entity.Offset, entity.End(), from, to, n,
		)
	}

	return from, to, nil
}

func checkRange(units utf16Text, i int, entity *yatgtypes.MessageEntity) yaerrors.Error {
	n := units.Len()

	var problem string

	switch {
	case entity.Offset < 0 || entity.Length < 0:
		problem = "negative offset or length"
	case entity.Offset > n || entity.Length > n-entity.Offset:
		problem = fmt.Sprintf("ends past %d code units", n)
	case units.splitsPair(entity.Offset) || units.splitsPair(entity.End()):
		problem = "splits a surrogate pair"
	default:
		return nil
	}

	return yaerrors.FromError(
		http.StatusBadRequest,
		ErrInvalidEntityRange,
		fmt.Sprintf(
			"[RENDER] entity %d (%s) [%d, %d): %s",
			i, entity.Type, entity.Offset, entity.End(), problem,
		),
	)
}

func (r *Renderer) renderEntity(i int, entity *yatgtypes.MessageEntity, text string) (string, yaerrors.Error) {
	escaped := r.markup.escapeText(text)

	var (
		template string
		found    bool
		url      string
	)

	switch entity.Type {
	case yatgtypes.EntityTextMention:
		if entity.User == nil {
			if r.mode == Strict {
				return "", yaerrors.FromError(
					http.StatusBadRequest,
					ErrMissingMentionUser,
					fmt.Sprintf("[RENDER] entity %d has no user", i),
				)
			}

			r.log.Warnf("Entity %d (text_mention) has no user, rendering plain text", i)

			return escaped, nil
		}

		url = yatgtypes.UserDeepLinkPrefix + strconv.FormatInt(entity.User.ID, 10)

		template, found = r.templates[yatgtypes.EntityTextMention]
		if !found {
			template, found = r.templates[yatgtypes.EntityURL]
		}
	case yatgtypes.EntityMention:
		url = yatgtypes.ProfileURLPrefix + strings.TrimPrefix(text, "@")
		template, found = r.templates[entity.Type]
	case yatgtypes.EntityURL, yatgtypes.EntityTextLink:
		url = text
		if entity.URL != nil {
			url = *entity.URL
		}

		template, found = r.templates[entity.Type]
	default:
		template, found = r.templates[entity.Type]
	}

	if !found {
		return escaped, nil
	}

	var language string
	if entity.Language != nil {
		language = *entity.Language
	}

	return strings.NewReplacer(
		placeholderText, escaped,
		placeholderURL, r.markup.escapeURL(url),
		placeholderLanguage, language,
	).Replace(template), nil
}

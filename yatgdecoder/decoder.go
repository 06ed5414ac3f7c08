// Package yatgdecoder turns loosely typed Bot API payloads into the
// yatgtypes object graph.
//
// Input may be an already decoded tree (map[string]any and []any, as
// produced by encoding/json or msgpack) or a serialized form: string,
// []byte, json.RawMessage or io.Reader. Serialized input is parsed as JSON
// unless the decoder was built with WithFormat(FormatMessagePack).
//
//	update, err := yatgdecoder.DecodeUpdate(body)
//	if err != nil {
//		var decodeErr *yatgdecoder.DecodeError
//		if errors.As(err, &decodeErr) {
//			log.Warnf("bad update: %s at %s", decodeErr.Kind, decodeErr.Field)
//		}
//
//		return err
//	}
//
//	if message := update.Message(); message != nil {
//		fmt.Println(message.ContentType)
//	}
//
// Decoding is pure and deterministic. A Decoder holds no mutable state and
// may be shared between goroutines.
package yatgdecoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaencoding"
	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

// Format selects how serialized input is parsed.
type Format uint8

const (
	FormatJSON Format = iota
	FormatMessagePack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMessagePack:
		return "msgpack"
	default:
		return "unknown"
	}
}

func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "json":
		*f = FormatJSON
	case "msgpack", "messagepack":
		*f = FormatMessagePack
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, text)
	}

	return nil
}

type Decoder struct {
	log    yalogger.Logger
	format Format
}

type Option func(*Decoder)

func WithLogger(log yalogger.Logger) Option {
	return func(d *Decoder) {
		d.log = log
	}
}

func WithFormat(format Format) Option {
	return func(d *Decoder) {
		d.format = format
	}
}

// New creates a JSON decoder logging through a default Info-level logger
// unless options say otherwise.
func New(opts ...Option) *Decoder {
	d := &Decoder{format: FormatJSON}

	for _, opt := range opts {
		opt(d)
	}

	if d.log == nil {
		d.log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	d.log = d.log.WithField(yalogger.KeyComponent, "decoder")

	return d
}

var defaultDecoder = New()

// DecodeUpdate decodes raw with a default JSON decoder.
func DecodeUpdate(raw any) (*yatgtypes.Update, yaerrors.Error) {
	return defaultDecoder.Update(raw)
}

// DecodeMessage decodes raw with a default JSON decoder.
func DecodeMessage(raw any) (*yatgtypes.Message, yaerrors.Error) {
	return defaultDecoder.Message(raw)
}

// Update decodes one Update. At most one payload variant is populated; see
// the update payload table for what happens when the wire carries several.
func (d *Decoder) Update(raw any) (*yatgtypes.Update, yaerrors.Error) {
	return decodeRoot(d, raw, "update", d.update)
}

// Updates decodes the result array of getUpdates, keeping order.
func (d *Decoder) Updates(raw any) ([]yatgtypes.Update, yaerrors.Error) {
	tree, err := d.parse(raw)
	if err == nil {
		var updates []yatgtypes.Update

		updates, err = listOf(nested(d.update))("", tree)
		if err == nil {
			return updates, nil
		}
	}

	return nil, toYaError(err, "[DECODER] failed to decode updates")
}

func (d *Decoder) Message(raw any) (*yatgtypes.Message, yaerrors.Error) {
	return decodeRoot(d, raw, "message", d.message)
}

func (d *Decoder) MessageEntity(raw any) (*yatgtypes.MessageEntity, yaerrors.Error) {
	return decodeRoot(d, raw, "message_entity", d.messageEntity)
}

func (d *Decoder) User(raw any) (*yatgtypes.User, yaerrors.Error) {
	return decodeRoot(d, raw, "user", d.user)
}

func (d *Decoder) Chat(raw any) (*yatgtypes.Chat, yaerrors.Error) {
	return decodeRoot(d, raw, "chat", d.chat)
}

func (d *Decoder) ChatMember(raw any) (*yatgtypes.ChatMember, yaerrors.Error) {
	return decodeRoot(d, raw, "chat_member", d.chatMember)
}

func (d *Decoder) ChatPermissions(raw any) (*yatgtypes.ChatPermissions, yaerrors.Error) {
	return decodeRoot(d, raw, "chat_permissions", d.chatPermissions)
}

func (d *Decoder) File(raw any) (*yatgtypes.File, yaerrors.Error) {
	return decodeRoot(d, raw, "file", d.file)
}

func (d *Decoder) UserProfilePhotos(raw any) (*yatgtypes.UserProfilePhotos, yaerrors.Error) {
	return decodeRoot(d, raw, "user_profile_photos", d.userProfilePhotos)
}

func (d *Decoder) WebhookInfo(raw any) (*yatgtypes.WebhookInfo, yaerrors.Error) {
	return decodeRoot(d, raw, "webhook_info", d.webhookInfo)
}

func (d *Decoder) ResponseParameters(raw any) (*yatgtypes.ResponseParameters, yaerrors.Error) {
	return decodeRoot(d, raw, "response_parameters", d.responseParameters)
}

func (d *Decoder) Poll(raw any) (*yatgtypes.Poll, yaerrors.Error) {
	return decodeRoot(d, raw, "poll", d.poll)
}

func (d *Decoder) CallbackQuery(raw any) (*yatgtypes.CallbackQuery, yaerrors.Error) {
	return decodeRoot(d, raw, "callback_query", d.callbackQuery)
}

// Response decodes the {ok, result, ...} envelope. Result is left as a raw
// tree for a second, method-specific pass.
//
// Example usage:
//
//	response, err := decoder.Response(body)
//	if err != nil {
//		return err
//	}
//
//	updates, err := decoder.Updates(response.Result)
func (d *Decoder) Response(raw any) (*yatgtypes.Response, yaerrors.Error) {
	return decodeRoot(d, raw, "response", d.response)
}

// Classify parses raw and classifies it as a message object.
func (d *Decoder) Classify(raw any) (yatgtypes.ContentType, yaerrors.Error) {
	tree, err := d.parse(raw)
	if err == nil {
		fields, ok := tree.(map[string]any)
		if ok {
			return Classify(fields), nil
		}

		err = invalidType("message", "object")
	}

	return yatgtypes.ContentTypeNone, toYaError(err, "[DECODER] failed to classify message")
}

func decodeRoot[T any](
	d *Decoder,
	raw any,
	name string,
	decode func(object) (T, error),
) (*T, yaerrors.Error) {
	tree, err := d.parse(raw)
	if err == nil {
		fields, ok := tree.(map[string]any)
		if !ok {
			err = invalidType(name, "object")
		} else {
			var value T

			value, err = decode(object{fields: fields})
			if err == nil {
				return &value, nil
			}
		}
	}

	return nil, toYaError(err, "[DECODER] failed to decode "+name)
}

// parse normalizes raw into a generic tree.
func (d *Decoder) parse(raw any) (any, error) {
	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case []any:
		return v, nil
	case json.RawMessage:
		return d.unmarshal(v)
	case []byte:
		return d.unmarshal(v)
	case string:
		return d.unmarshal([]byte(v))
	case io.Reader:
		data, err := io.ReadAll(v)
		if err != nil {
			return nil, invalidInput(err)
		}

		return d.unmarshal(data)
	default:
		return nil, invalidInput(fmt.Errorf("%w: %T", ErrUnsupportedInput, raw))
	}
}

func (d *Decoder) unmarshal(data []byte) (any, error) {
	if d.format == FormatMessagePack {
		tree, err := yaencoding.DecodeMessagePackTree(data)
		if err != nil {
			return nil, invalidInput(err)
		}

		return tree, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, invalidInput(ErrTrailingData)
	}

	return tree, nil
}

package yatgdecoder_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaencoding"
	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgdecoder"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

func ptr[T any](v T) *T {
	return &v
}

func newDecoder(opts ...yatgdecoder.Option) *yatgdecoder.Decoder {
	log := yalogger.NewBaseLogger(&yalogger.Config{
		BaseLoggerType: yalogger.Logrus,
		Level:          yalogger.DebugLevel,
	}).NewLogger()

	return yatgdecoder.New(append([]yatgdecoder.Option{yatgdecoder.WithLogger(log)}, opts...)...)
}

func requireDecodeError(t *testing.T, err error, kind yatgdecoder.ErrorKind, field string) {
	t.Helper()

	require.Error(t, err)

	var decodeErr *yatgdecoder.DecodeError

	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, kind, decodeErr.Kind, decodeErr.Error())
	assert.Equal(t, field, decodeErr.Field)
}

const textUpdate = `{
	"update_id": 10000,
	"message": {
		"message_id": 1365,
		"date": 1441645532,
		"from": {"id": 1111111, "is_bot": false, "first_name": "Test", "last_name": "Lastname", "username": "Test"},
		"chat": {"id": 1111111, "type": "private", "first_name": "Test", "username": "Test"},
		"text": "/start hello",
		"entities": [{"type": "bot_command", "offset": 0, "length": 6}]
	}
}`

func TestDecoder_TextMessageUpdate(t *testing.T) {
	t.Parallel()

	update, err := newDecoder().Update(textUpdate)
	require.NoError(t, err)

	want := &yatgtypes.Update{
		UpdateID: 10000,
		Payload: &yatgtypes.MessageUpdate{Message: &yatgtypes.Message{
			MessageID: 1365,
			Date:      1441645532,
			From: &yatgtypes.User{
				ID:        1111111,
				FirstName: "Test",
				LastName:  ptr("Lastname"),
				Username:  ptr("Test"),
			},
			Chat: yatgtypes.Chat{
				ID:        1111111,
				Type:      yatgtypes.ChatTypePrivate,
				FirstName: ptr("Test"),
				Username:  ptr("Test"),
			},
			ContentType: yatgtypes.ContentTypeText,
			Text:        ptr("/start hello"),
			Entities: []yatgtypes.MessageEntity{
				{Type: yatgtypes.EntityBotCommand, Offset: 0, Length: 6},
			},
		}},
	}

	if diff := cmp.Diff(want, update); diff != "" {
		t.Fatalf("update mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, yatgtypes.UpdateTypeMessage, update.Type())
	assert.True(t, update.Message().IsCommand())
	assert.Nil(t, update.EditedMessage())
}

func TestDecoder_UpdateVariants(t *testing.T) {
	t.Parallel()

	const (
		user    = `{"id": 7, "is_bot": false, "first_name": "Ann"}`
		message = `{"message_id": 1, "date": 2, "chat": {"id": 3, "type": "channel", "title": "News"}, "text": "hi"}`
		address = `{"country_code": "NL", "state": "", "city": "Amsterdam",
			"street_line1": "Dam 1", "street_line2": "", "post_code": "1012"}`
	)

	tests := []struct {
		name     string
		field    string
		payload  string
		wantType yatgtypes.UpdateType
		check    func(t *testing.T, update *yatgtypes.Update)
	}{
		{
			name:     "message",
			field:    "message",
			payload:  message,
			wantType: yatgtypes.UpdateTypeMessage,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.Message())
				assert.Equal(t, "hi", *update.Message().Text)
			},
		},
		{
			name:     "edited message",
			field:    "edited_message",
			payload:  message,
			wantType: yatgtypes.UpdateTypeEditedMessage,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.EditedMessage())
				assert.Nil(t, update.Message())
			},
		},
		{
			name:     "channel post",
			field:    "channel_post",
			payload:  message,
			wantType: yatgtypes.UpdateTypeChannelPost,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.ChannelPost())
				assert.True(t, update.ChannelPost().Chat.IsChannel())
			},
		},
		{
			name:     "edited channel post",
			field:    "edited_channel_post",
			payload:  message,
			wantType: yatgtypes.UpdateTypeEditedChannelPost,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.EditedChannelPost())
				assert.Same(t, update.EditedChannelPost(), update.AnyMessage())
			},
		},
		{
			name:     "inline query",
			field:    "inline_query",
			payload:  `{"id": "q1", "from": ` + user + `, "query": "cats", "offset": ""}`,
			wantType: yatgtypes.UpdateTypeInlineQuery,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.InlineQuery())
				assert.Equal(t, "cats", update.InlineQuery().Query)
				assert.Equal(t, int64(7), update.Sender().ID)
			},
		},
		{
			name:     "chosen inline result",
			field:    "chosen_inline_result",
			payload:  `{"result_id": "r1", "from": ` + user + `, "query": "cats"}`,
			wantType: yatgtypes.UpdateTypeChosenInlineResult,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.ChosenInlineResult())
				assert.Equal(t, "r1", update.ChosenInlineResult().ResultID)
			},
		},
		{
			name:     "callback query",
			field:    "callback_query",
			payload:  `{"id": "c1", "from": ` + user + `, "chat_instance": "ci", "data": "yes", "message": ` + message + `}`,
			wantType: yatgtypes.UpdateTypeCallbackQuery,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.CallbackQuery())
				assert.Equal(t, "yes", *update.CallbackQuery().Data)
				require.NotNil(t, update.AnyMessage())
				assert.Equal(t, int64(1), update.AnyMessage().MessageID)
			},
		},
		{
			name:     "shipping query",
			field:    "shipping_query",
			payload:  `{"id": "s1", "from": ` + user + `, "invoice_payload": "p", "shipping_address": ` + address + `}`,
			wantType: yatgtypes.UpdateTypeShippingQuery,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.ShippingQuery())
				assert.Equal(t, "Amsterdam", update.ShippingQuery().ShippingAddress.City)
			},
		},
		{
			name:  "pre checkout query",
			field: "pre_checkout_query",
			payload: `{"id": "p1", "from": ` + user + `, "currency": "EUR", "total_amount": 1250,
				"invoice_payload": "p", "order_info": {"email": "a@b.c"}}`,
			wantType: yatgtypes.UpdateTypePreCheckoutQuery,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.PreCheckoutQuery())
				assert.Equal(t, int64(1250), update.PreCheckoutQuery().TotalAmount)
				assert.Equal(t, "a@b.c", *update.PreCheckoutQuery().OrderInfo.Email)
			},
		},
		{
			name:  "poll",
			field: "poll",
			payload: `{"id": "poll1", "question": "?", "options": [{"text": "a", "voter_count": 2}],
				"is_closed": false, "is_anonymous": true, "type": "quiz",
				"allows_multiple_answers": false, "correct_option_id": 0}`,
			wantType: yatgtypes.UpdateTypePoll,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.Poll())
				assert.Equal(t, yatgtypes.PollTypeQuiz, update.Poll().Type)
				assert.Equal(t, ptr(0), update.Poll().CorrectOptionID)
				assert.Nil(t, update.Poll().TotalVoterCount)
			},
		},
		{
			name:     "poll answer",
			field:    "poll_answer",
			payload:  `{"poll_id": "poll1", "user": ` + user + `, "option_ids": [0, 2]}`,
			wantType: yatgtypes.UpdateTypePollAnswer,
			check: func(t *testing.T, update *yatgtypes.Update) {
				require.NotNil(t, update.PollAnswer())
				assert.Equal(t, []int{0, 2}, update.PollAnswer().OptionIDs)
				assert.Equal(t, "Ann", update.Sender().FirstName)
			},
		},
	}

	decoder := newDecoder()

	for _, tt := range tests {
		t.Run("[Update] - "+tt.name, func(t *testing.T) {
			t.Parallel()

			update, err := decoder.Update(`{"update_id": 5, "` + tt.field + `": ` + tt.payload + `}`)
			require.NoError(t, err)

			assert.Equal(t, int64(5), update.UpdateID)
			assert.Equal(t, tt.wantType, update.Type())
			tt.check(t, update)
		})
	}
}

func TestDecoder_UpdateWithoutPayload(t *testing.T) {
	t.Parallel()

	update, err := newDecoder().Update(`{"update_id": 1, "my_chat_member": {"whatever": true}}`)
	require.NoError(t, err)

	assert.Nil(t, update.Payload)
	assert.Equal(t, yatgtypes.UpdateTypeNone, update.Type())
	assert.Nil(t, update.AnyMessage())
	assert.Nil(t, update.Sender())
}

func TestDecoder_UpdateSeveralPayloads(t *testing.T) {
	t.Parallel()

	update, err := newDecoder().Update(map[string]any{
		"update_id": json.Number("9"),
		"poll_answer": map[string]any{
			"poll_id":    "p",
			"user":       map[string]any{"id": 1, "is_bot": false, "first_name": "A"},
			"option_ids": []any{},
		},
		"message": map[string]any{
			"message_id": 1,
			"date":       1,
			"chat":       map[string]any{"id": 1, "type": "private"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, yatgtypes.UpdateTypeMessage, update.Type())
	assert.Nil(t, update.PollAnswer())

	t.Run("[Update] - malformed later payload fails", func(t *testing.T) {
		t.Parallel()

		_, err := newDecoder().Update(`{
			"update_id": 1,
			"message": {"message_id": 1, "date": 1, "chat": {"id": 1, "type": "private"}},
			"edited_message": {"bogus": true}
		}`)

		requireDecodeError(t, err, yatgdecoder.KindMissingField, "edited_message.message_id")
		assert.ErrorIs(t, err, yatgdecoder.ErrMissingField)
	})
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	decoder := newDecoder()

	t.Run("[Update] - missing update_id", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(`{"message": {}}`)

		requireDecodeError(t, err, yatgdecoder.KindMissingField, "update_id")
		assert.ErrorIs(t, err, yatgdecoder.ErrMissingField)
		assert.Equal(t, http.StatusUnprocessableEntity, err.Code())
	})

	t.Run("[Update] - nested missing field", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(`{"update_id": 1, "message": {"message_id": 1, "date": 1, "chat": {"type": "private"}}}`)

		requireDecodeError(t, err, yatgdecoder.KindMissingField, "message.chat.id")
	})

	t.Run("[Update] - null required field is missing", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(`{"update_id": null}`)

		requireDecodeError(t, err, yatgdecoder.KindMissingField, "update_id")
	})

	t.Run("[Update] - invalid type", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(`{"update_id": "1"}`)

		requireDecodeError(t, err, yatgdecoder.KindInvalidType, "update_id")
		assert.ErrorIs(t, err, yatgdecoder.ErrInvalidType)
	})

	t.Run("[Update] - fractional integer", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(`{"update_id": 1.5}`)

		requireDecodeError(t, err, yatgdecoder.KindInvalidType, "update_id")
	})

	t.Run("[Message] - list element path", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Message(`{"message_id": 1, "date": 1, "chat": {"id": 1, "type": "group"},
			"text": "ab", "entities": [{"type": "bold", "offset": 0, "length": 1}, {"type": "bold", "offset": 1}]}`)

		requireDecodeError(t, err, yatgdecoder.KindMissingField, "entities[1].length")
	})

	t.Run("[Message] - optional field with wrong type", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Message(`{"message_id": 1, "date": 1, "chat": {"id": 1, "type": "group"}, "caption": 5}`)

		requireDecodeError(t, err, yatgdecoder.KindInvalidType, "caption")
	})

	t.Run("[Update] - malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(`{"update_id": `)

		requireDecodeError(t, err, yatgdecoder.KindInvalidInput, "")
		assert.ErrorIs(t, err, yatgdecoder.ErrInvalidInput)
		assert.Equal(t, http.StatusBadRequest, err.Code())
	})

	t.Run("[Update] - trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(`{"update_id": 1} {}`)

		assert.ErrorIs(t, err, yatgdecoder.ErrTrailingData)
	})

	t.Run("[Update] - root is not an object", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(`[1, 2]`)

		requireDecodeError(t, err, yatgdecoder.KindInvalidType, "update")
	})

	t.Run("[Update] - unsupported input", func(t *testing.T) {
		t.Parallel()

		_, err := decoder.Update(42)

		assert.ErrorIs(t, err, yatgdecoder.ErrUnsupportedInput)
		assert.ErrorIs(t, err, yatgdecoder.ErrInvalidInput)
	})
}

func TestDecoder_InputForms(t *testing.T) {
	t.Parallel()

	decoder := newDecoder()
	const raw = `{"id": 42, "is_bot": true, "first_name": "Bot", "username": "ya_bot"}`

	want := &yatgtypes.User{ID: 42, IsBot: true, FirstName: "Bot", Username: ptr("ya_bot")}

	inputs := map[string]any{
		"string":      raw,
		"bytes":       []byte(raw),
		"raw message": json.RawMessage(raw),
		"reader":      strings.NewReader(raw),
		"tree": map[string]any{
			"id":         float64(42),
			"is_bot":     true,
			"first_name": "Bot",
			"username":   "ya_bot",
		},
	}

	for name, input := range inputs {
		user, err := decoder.User(input)
		require.NoError(t, err, name)

		if diff := cmp.Diff(want, user); diff != "" {
			t.Fatalf("%s: user mismatch (-want +got):\n%s", name, diff)
		}
	}

	assert.Equal(t, "https://t.me/ya_bot", want.Link())
}

func TestDecoder_MessagePack(t *testing.T) {
	t.Parallel()

	data, yaErr := yaencoding.EncodeMessagePack(map[string]any{
		"update_id": 77,
		"message": map[string]any{
			"message_id": 3,
			"date":       uint32(1700000000),
			"chat":       map[string]any{"id": int64(-100123), "type": "supergroup", "title": "Dev"},
			"location":   map[string]any{"longitude": 4.9, "latitude": 52.37},
		},
	})
	require.NoError(t, yaErr)

	update, err := newDecoder(yatgdecoder.WithFormat(yatgdecoder.FormatMessagePack)).Update(data)
	require.NoError(t, err)

	message := update.Message()
	require.NotNil(t, message)

	assert.Equal(t, int64(77), update.UpdateID)
	assert.Equal(t, int64(1700000000), message.Date)
	assert.Equal(t, int64(-100123), message.Chat.ID)
	assert.True(t, message.Chat.IsGroup())
	assert.Equal(t, yatgtypes.ContentTypeLocation, message.ContentType)
	assert.InDelta(t, 52.37, message.Location.Latitude, 1e-9)

	_, err = newDecoder(yatgdecoder.WithFormat(yatgdecoder.FormatMessagePack)).Update(append(data, 0xc0))
	assert.ErrorIs(t, err, yatgdecoder.ErrInvalidInput)
}

func TestDecoder_Updates(t *testing.T) {
	t.Parallel()

	updates, err := newDecoder().Updates(`[
		{"update_id": 1, "poll_answer": {"poll_id": "a", "user": {"id": 1, "is_bot": false, "first_name": "A"}}},
		{"update_id": 2}
	]`)
	require.NoError(t, err)
	require.Len(t, updates, 2)

	assert.Equal(t, int64(1), updates[0].UpdateID)
	assert.Nil(t, updates[0].PollAnswer().OptionIDs)
	assert.Equal(t, int64(2), updates[1].UpdateID)

	_, err = newDecoder().Updates(`[{"update_id": 1}, {}]`)
	requireDecodeError(t, err, yatgdecoder.KindMissingField, "[1].update_id")
}

func TestDecoder_Response(t *testing.T) {
	t.Parallel()

	decoder := newDecoder()

	t.Run("[Response] - ok with result", func(t *testing.T) {
		t.Parallel()

		response, err := decoder.Response(`{"ok": true, "result": [{"update_id": 3}]}`)
		require.NoError(t, err)
		require.True(t, response.OK)

		updates, err := decoder.Updates(response.Result)
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, int64(3), updates[0].UpdateID)
	})

	t.Run("[Response] - error with parameters", func(t *testing.T) {
		t.Parallel()

		response, err := decoder.Response(`{"ok": false, "error_code": 429,
			"description": "Too Many Requests", "parameters": {"retry_after": 12}}`)
		require.NoError(t, err)

		assert.False(t, response.OK)
		assert.Nil(t, response.Result)
		assert.Equal(t, ptr(429), response.ErrorCode)
		assert.Equal(t, ptr(12), response.Parameters.RetryAfter)
		assert.Nil(t, response.Parameters.MigrateToChatID)
	})
}

func TestDecoder_AuxiliaryObjects(t *testing.T) {
	t.Parallel()

	decoder := newDecoder()

	t.Run("[WebhookInfo] - last error", func(t *testing.T) {
		t.Parallel()

		info, err := decoder.WebhookInfo(`{"url": "https://example.com/hook", "has_custom_certificate": false,
			"pending_update_count": 4, "last_error_date": 1700000000, "allowed_updates": ["message"]}`)
		require.NoError(t, err)

		assert.Equal(t, ptr(int64(1700000000)), info.LastErrorDate)
		assert.Nil(t, info.LastErrorMessage)
		assert.Equal(t, []string{"message"}, info.AllowedUpdates)
	})

	t.Run("[UserProfilePhotos] - nested lists", func(t *testing.T) {
		t.Parallel()

		photos, err := decoder.UserProfilePhotos(`{"total_count": 1, "photos": [[
			{"file_id": "a", "file_unique_id": "ua", "width": 90, "height": 90},
			{"file_id": "b", "file_unique_id": "ub", "width": 640, "height": 640}
		]]}`)
		require.NoError(t, err)
		require.Len(t, photos.Photos, 1)
		require.Len(t, photos.Photos[0], 2)
		assert.Equal(t, "b", photos.Photos[0][1].FileID)

		_, err = decoder.UserProfilePhotos(`{"total_count": 1, "photos": [[{"file_id": "a"}]]}`)
		requireDecodeError(t, err, yatgdecoder.KindMissingField, "photos[0][0].file_unique_id")
	})

	t.Run("[ChatMember] - administrator", func(t *testing.T) {
		t.Parallel()

		member, err := decoder.ChatMember(`{"user": {"id": 1, "is_bot": false, "first_name": "A"},
			"status": "administrator", "can_pin_messages": true}`)
		require.NoError(t, err)

		assert.True(t, member.IsAdmin())
		assert.Equal(t, ptr(true), member.CanPinMessages)
	})

	t.Run("[File] - path", func(t *testing.T) {
		t.Parallel()

		file, err := decoder.File(`{"file_id": "f", "file_unique_id": "u", "file_path": "photos/1.jpg"}`)
		require.NoError(t, err)
		assert.Equal(t, ptr("photos/1.jpg"), file.FilePath)
	})

	t.Run("[ChatPermissions] - empty object", func(t *testing.T) {
		t.Parallel()

		permissions, err := decoder.ChatPermissions(`{}`)
		require.NoError(t, err)
		assert.Equal(t, &yatgtypes.ChatPermissions{}, permissions)
	})
}

func TestDecoder_Deterministic(t *testing.T) {
	t.Parallel()

	decoder := newDecoder()

	first, err := decoder.Update(textUpdate)
	require.NoError(t, err)

	second, err := decoder.Update(textUpdate)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
	assert.NotSame(t, first.Message(), second.Message())
}

func TestDecodeUpdate_Default(t *testing.T) {
	t.Parallel()

	update, err := yatgdecoder.DecodeUpdate(textUpdate)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), update.UpdateID)

	message, err := yatgdecoder.DecodeMessage(`{"message_id": 2, "date": 3, "chat": {"id": 4, "type": "private"}}`)
	require.NoError(t, err)
	assert.Equal(t, yatgtypes.ContentTypeNone, message.ContentType)
	assert.False(t, message.HasContentType())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	var format yatgdecoder.Format

	require.NoError(t, format.UnmarshalText([]byte("MsgPack")))
	assert.Equal(t, yatgdecoder.FormatMessagePack, format)
	assert.Equal(t, "msgpack", format.String())

	err := format.UnmarshalText([]byte("xml"))
	assert.True(t, errors.Is(err, yatgdecoder.ErrUnknownFormat))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(yatgdecoder.EnvFormat, "msgpack")

	cfg := yatgdecoder.ConfigFromEnv(nil)
	assert.Equal(t, yatgdecoder.FormatMessagePack, cfg.Format)

	data, yaErr := yaencoding.EncodeMessagePack(map[string]any{"id": 1, "is_bot": false, "first_name": "A"})
	require.NoError(t, yaErr)

	user, err := yatgdecoder.NewFromConfig(cfg).User(data)
	require.NoError(t, err)
	assert.Equal(t, "A", user.FirstName)
}

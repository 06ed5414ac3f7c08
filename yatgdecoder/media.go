package yatgdecoder

import "github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"

func (d *Decoder) photoSize(o object) (yatgtypes.PhotoSize, error) {
	r := read(o)

	size := yatgtypes.PhotoSize{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		Width:        req(r, "width", toInt),
		Height:       req(r, "height", toInt),
		FileSize:     opt(r, "file_size", toInt64),
	}

	return size, r.err
}

func (d *Decoder) audio(o object) (yatgtypes.Audio, error) {
	r := read(o)

	audio := yatgtypes.Audio{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		Duration:     req(r, "duration", toInt),
		Performer:    opt(r, "performer", toString),
		Title:        opt(r, "title", toString),
		MimeType:     opt(r, "mime_type", toString),
		FileSize:     opt(r, "file_size", toInt64),
		Thumb:        opt(r, "thumb", nested(d.photoSize)),
	}

	return audio, r.err
}

func (d *Decoder) document(o object) (yatgtypes.Document, error) {
	r := read(o)

	document := yatgtypes.Document{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		Thumb:        opt(r, "thumb", nested(d.photoSize)),
		FileName:     opt(r, "file_name", toString),
		MimeType:     opt(r, "mime_type", toString),
		FileSize:     opt(r, "file_size", toInt64),
	}

	return document, r.err
}

func (d *Decoder) video(o object) (yatgtypes.Video, error) {
	r := read(o)

	video := yatgtypes.Video{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		Width:        req(r, "width", toInt),
		Height:       req(r, "height", toInt),
		Duration:     req(r, "duration", toInt),
		Thumb:        opt(r, "thumb", nested(d.photoSize)),
		MimeType:     opt(r, "mime_type", toString),
		FileSize:     opt(r, "file_size", toInt64),
	}

	return video, r.err
}

func (d *Decoder) animation(o object) (yatgtypes.Animation, error) {
	r := read(o)

	animation := yatgtypes.Animation{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		Width:        req(r, "width", toInt),
		Height:       req(r, "height", toInt),
		Duration:     req(r, "duration", toInt),
		Thumb:        opt(r, "thumb", nested(d.photoSize)),
		FileName:     opt(r, "file_name", toString),
		MimeType:     opt(r, "mime_type", toString),
		FileSize:     opt(r, "file_size", toInt64),
	}

	return animation, r.err
}

func (d *Decoder) voice(o object) (yatgtypes.Voice, error) {
	r := read(o)

	voice := yatgtypes.Voice{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		Duration:     req(r, "duration", toInt),
		MimeType:     opt(r, "mime_type", toString),
		FileSize:     opt(r, "file_size", toInt64),
	}

	return voice, r.err
}

func (d *Decoder) videoNote(o object) (yatgtypes.VideoNote, error) {
	r := read(o)

	note := yatgtypes.VideoNote{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		Length:       req(r, "length", toInt),
		Duration:     req(r, "duration", toInt),
		Thumb:        opt(r, "thumb", nested(d.photoSize)),
		FileSize:     opt(r, "file_size", toInt64),
	}

	return note, r.err
}

func (d *Decoder) sticker(o object) (yatgtypes.Sticker, error) {
	r := read(o)

	sticker := yatgtypes.Sticker{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		Width:        req(r, "width", toInt),
		Height:       req(r, "height", toInt),
		IsAnimated:   req(r, "is_animated", toBool),
		Thumb:        opt(r, "thumb", nested(d.photoSize)),
		Emoji:        opt(r, "emoji", toString),
		SetName:      opt(r, "set_name", toString),
		MaskPosition: opt(r, "mask_position", nested(d.maskPosition)),
		FileSize:     opt(r, "file_size", toInt64),
	}

	return sticker, r.err
}

func (d *Decoder) maskPosition(o object) (yatgtypes.MaskPosition, error) {
	r := read(o)

	position := yatgtypes.MaskPosition{
		Point:  req(r, "point", toString),
		XShift: req(r, "x_shift", toFloat64),
		YShift: req(r, "y_shift", toFloat64),
		Scale:  req(r, "scale", toFloat64),
	}

	return position, r.err
}

func (d *Decoder) contact(o object) (yatgtypes.Contact, error) {
	r := read(o)

	contact := yatgtypes.Contact{
		PhoneNumber: req(r, "phone_number", toString),
		FirstName:   req(r, "first_name", toString),
		LastName:    opt(r, "last_name", toString),
		UserID:      opt(r, "user_id", toInt64),
		VCard:       opt(r, "vcard", toString),
	}

	return contact, r.err
}

func (d *Decoder) location(o object) (yatgtypes.Location, error) {
	r := read(o)

	location := yatgtypes.Location{
		Longitude: req(r, "longitude", toFloat64),
		Latitude:  req(r, "latitude", toFloat64),
	}

	return location, r.err
}

func (d *Decoder) venue(o object) (yatgtypes.Venue, error) {
	r := read(o)

	venue := yatgtypes.Venue{
		Location:       req(r, "location", nested(d.location)),
		Title:          req(r, "title", toString),
		Address:        req(r, "address", toString),
		FoursquareID:   opt(r, "foursquare_id", toString),
		FoursquareType: opt(r, "foursquare_type", toString),
	}

	return venue, r.err
}

func (d *Decoder) pollOption(o object) (yatgtypes.PollOption, error) {
	r := read(o)

	option := yatgtypes.PollOption{
		Text:       req(r, "text", toString),
		VoterCount: req(r, "voter_count", toInt),
	}

	return option, r.err
}

func (d *Decoder) poll(o object) (yatgtypes.Poll, error) {
	r := read(o)

	poll := yatgtypes.Poll{
		ID:                    req(r, "id", toString),
		Question:              req(r, "question", toString),
		Options:               req(r, "options", listOf(nested(d.pollOption))),
		TotalVoterCount:       opt(r, "total_voter_count", toInt),
		IsClosed:              req(r, "is_closed", toBool),
		IsAnonymous:           req(r, "is_anonymous", toBool),
		Type:                  req(r, "type", toNamedString[yatgtypes.PollType]),
		AllowsMultipleAnswers: req(r, "allows_multiple_answers", toBool),
		CorrectOptionID:       opt(r, "correct_option_id", toInt),
	}

	return poll, r.err
}

func (d *Decoder) pollAnswer(o object) (yatgtypes.PollAnswer, error) {
	r := read(o)

	answer := yatgtypes.PollAnswer{
		PollID:    req(r, "poll_id", toString),
		User:      req(r, "user", nested(d.user)),
		OptionIDs: optList(r, "option_ids", toInt),
	}

	return answer, r.err
}

func (d *Decoder) game(o object) (yatgtypes.Game, error) {
	r := read(o)

	game := yatgtypes.Game{
		Title:        req(r, "title", toString),
		Description:  req(r, "description", toString),
		Photo:        req(r, "photo", listOf(nested(d.photoSize))),
		Text:         opt(r, "text", toString),
		TextEntities: optList(r, "text_entities", nested(d.messageEntity)),
		Animation:    opt(r, "animation", nested(d.animation)),
	}

	return game, r.err
}

func (d *Decoder) file(o object) (yatgtypes.File, error) {
	r := read(o)

	file := yatgtypes.File{
		FileID:       req(r, "file_id", toString),
		FileUniqueID: req(r, "file_unique_id", toString),
		FileSize:     opt(r, "file_size", toInt64),
		FilePath:     opt(r, "file_path", toString),
	}

	return file, r.err
}

func (d *Decoder) userProfilePhotos(o object) (yatgtypes.UserProfilePhotos, error) {
	r := read(o)

	photos := yatgtypes.UserProfilePhotos{
		TotalCount: req(r, "total_count", toInt),
		Photos:     req(r, "photos", listOf(listOf(nested(d.photoSize)))),
	}

	return photos, r.err
}

package yatgdecoder

import "github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"

func (d *Decoder) webhookInfo(o object) (yatgtypes.WebhookInfo, error) {
	r := read(o)

	info := yatgtypes.WebhookInfo{
		URL:                  req(r, "url", toString),
		HasCustomCertificate: req(r, "has_custom_certificate", toBool),
		PendingUpdateCount:   req(r, "pending_update_count", toInt),
		IPAddress:            opt(r, "ip_address", toString),
		LastErrorDate:        opt(r, "last_error_date", toInt64),
		LastErrorMessage:     opt(r, "last_error_message", toString),
		MaxConnections:       opt(r, "max_connections", toInt),
		AllowedUpdates:       optList(r, "allowed_updates", toString),
	}

	return info, r.err
}

func (d *Decoder) responseParameters(o object) (yatgtypes.ResponseParameters, error) {
	r := read(o)

	parameters := yatgtypes.ResponseParameters{
		MigrateToChatID: opt(r, "migrate_to_chat_id", toInt64),
		RetryAfter:      opt(r, "retry_after", toInt),
	}

	return parameters, r.err
}

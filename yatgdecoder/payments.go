package yatgdecoder

import "github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"

func (d *Decoder) invoice(o object) (yatgtypes.Invoice, error) {
	r := read(o)

	invoice := yatgtypes.Invoice{
		Title:          req(r, "title", toString),
		Description:    req(r, "description", toString),
		StartParameter: req(r, "start_parameter", toString),
		Currency:       req(r, "currency", toString),
		TotalAmount:    req(r, "total_amount", toInt64),
	}

	return invoice, r.err
}

func (d *Decoder) shippingAddress(o object) (yatgtypes.ShippingAddress, error) {
	r := read(o)

	address := yatgtypes.ShippingAddress{
		CountryCode: req(r, "country_code", toString),
		State:       req(r, "state", toString),
		City:        req(r, "city", toString),
		StreetLine1: req(r, "street_line1", toString),
		StreetLine2: req(r, "street_line2", toString),
		PostCode:    req(r, "post_code", toString),
	}

	return address, r.err
}

func (d *Decoder) orderInfo(o object) (yatgtypes.OrderInfo, error) {
	r := read(o)

	info := yatgtypes.OrderInfo{
		Name:            opt(r, "name", toString),
		PhoneNumber:     opt(r, "phone_number", toString),
		Email:           opt(r, "email", toString),
		ShippingAddress: opt(r, "shipping_address", nested(d.shippingAddress)),
	}

	return info, r.err
}

func (d *Decoder) successfulPayment(o object) (yatgtypes.SuccessfulPayment, error) {
	r := read(o)

	payment := yatgtypes.SuccessfulPayment{
		Currency:                req(r, "currency", toString),
		TotalAmount:             req(r, "total_amount", toInt64),
		InvoicePayload:          req(r, "invoice_payload", toString),
		ShippingOptionID:        opt(r, "shipping_option_id", toString),
		OrderInfo:               opt(r, "order_info", nested(d.orderInfo)),
		TelegramPaymentChargeID: req(r, "telegram_payment_charge_id", toString),
		ProviderPaymentChargeID: req(r, "provider_payment_charge_id", toString),
	}

	return payment, r.err
}

func (d *Decoder) shippingQuery(o object) (yatgtypes.ShippingQuery, error) {
	r := read(o)

	query := yatgtypes.ShippingQuery{
		ID:              req(r, "id", toString),
		From:            req(r, "from", nested(d.user)),
		InvoicePayload:  req(r, "invoice_payload", toString),
		ShippingAddress: req(r, "shipping_address", nested(d.shippingAddress)),
	}

	return query, r.err
}

func (d *Decoder) preCheckoutQuery(o object) (yatgtypes.PreCheckoutQuery, error) {
	r := read(o)

	query := yatgtypes.PreCheckoutQuery{
		ID:               req(r, "id", toString),
		From:             req(r, "from", nested(d.user)),
		Currency:         req(r, "currency", toString),
		TotalAmount:      req(r, "total_amount", toInt64),
		InvoicePayload:   req(r, "invoice_payload", toString),
		ShippingOptionID: opt(r, "shipping_option_id", toString),
		OrderInfo:        opt(r, "order_info", nested(d.orderInfo)),
	}

	return query, r.err
}

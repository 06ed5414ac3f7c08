package yatgtypes

// Amounts are in the smallest units of Currency (cents for USD).

type Invoice struct {
	Title          string
	Description    string
	StartParameter string
	Currency       string
	TotalAmount    int64
}

type ShippingAddress struct {
	CountryCode string
	State       string
	City        string
	StreetLine1 string
	StreetLine2 string
	PostCode    string
}

type OrderInfo struct {
	Name            *string
	PhoneNumber     *string
	Email           *string
	ShippingAddress *ShippingAddress
}

type SuccessfulPayment struct {
	Currency                string
	TotalAmount             int64
	InvoicePayload          string
	ShippingOptionID        *string
	OrderInfo               *OrderInfo
	TelegramPaymentChargeID string
	ProviderPaymentChargeID string
}

type ShippingQuery struct {
	ID              string
	From            User
	InvoicePayload  string
	ShippingAddress ShippingAddress
}

type PreCheckoutQuery struct {
	ID               string
	From             User
	Currency         string
	TotalAmount      int64
	InvoicePayload   string
	ShippingOptionID *string
	OrderInfo        *OrderInfo
}

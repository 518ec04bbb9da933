package types

// CartItem is one line of the cart snapshot frozen at checkout time.
// Verification and shipping read this snapshot, never the live catalog.
type CartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"product_name"`
	SKU       string  `json:"sku,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
	Weight    string  `json:"weight,omitempty"`
	Category  string  `json:"category,omitempty"`
	HSN       string  `json:"hsn,omitempty"`
	Discount  string  `json:"discount,omitempty"`
}

// CustomerSnapshot carries the consignee contact and address captured with a
// checkout attempt.
type CustomerSnapshot struct {
	Name        string `json:"user_name"`
	Mobile      string `json:"user_mobile_num"`
	Email       string `json:"user_email"`
	HouseNumber string `json:"user_house_number"`
	Landmark    string `json:"user_landmark"`
	Pincode     string `json:"user_pincode"`
	City        string `json:"user_city"`
	State       string `json:"user_state"`
	Country     string `json:"user_country"`
}

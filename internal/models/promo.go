package models

// PromoOffer is the promotional content shown inside the popup
type PromoOffer struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTALabel    string `json:"cta_label"`
	CTAURL      string `json:"cta_url"`
}

// PromoPopupResponse reports the current popup gate state plus the offer
type PromoPopupResponse struct {
	Visible bool       `json:"visible"`
	Offer   PromoOffer `json:"offer"`
}

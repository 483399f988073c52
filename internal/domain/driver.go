package domain

// CNH categories accepted for motorcycle rentals. Comparison is
// case-sensitive with no normalization.
const (
	CNHTypeA  = "A"
	CNHTypeB  = "B"
	CNHTypeAB = "A+B"
)

// DeliveryDriver is the person renting a motorcycle. CNPJ and CNH are
// unique across drivers; CNHImage holds the license photo as base64.
type DeliveryDriver struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CNPJ      string `json:"cnpj"`
	BirthDate string `json:"birth_date"`
	CNH       string `json:"cnh"`
	CNHType   string `json:"cnh_type"`
	CNHImage  string `json:"cnh_image,omitempty"`
}

// CanRentMoto reports whether the driver's license category allows
// motorcycle rentals.
func (d *DeliveryDriver) CanRentMoto() bool {
	return d.CNHType == CNHTypeA || d.CNHType == CNHTypeAB
}

package models

// PaymentConfig is the bank-transfer payment block the upstream returns under
// configuracionPago when a transfer reservation is created.
type PaymentConfig struct {
	Banco          string `json:"banco"`
	CuentaBancaria string `json:"cuentaBancaria"`
	Clabe          string `json:"clabe"`
	WhatsappURL    string `json:"whatsappUrl"`
}

// ContactConfig is served by GET /api/config/contacto.
type ContactConfig struct {
	WhatsappURL string `json:"whatsappUrl"`
}

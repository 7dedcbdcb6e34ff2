package models

// Extraction - структурированный результат разбора свободного текста
// SOS-сообщения внешним NLP-сервисом
type Extraction struct {
	Postcode string   `json:"postcode"`
	People   int      `json:"people"`
	Needs    []string `json:"needs"`
	Reply    string   `json:"reply"`
}

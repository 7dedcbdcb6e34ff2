package v1

import (
	"encoding/xml"
	"time"
)

// IncomingMessageRequest DTO входящего сообщения от транспорта (форма Twilio)
// @Description DTO входящего сообщения от транспорта
type IncomingMessageRequest struct {
	From string `form:"From" validate:"required"`
	Body string `form:"Body" validate:"required"`
}

// TwimlResponse - ответный XML в формате TwiML, который транспорт
// доставит отправителю
type TwimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// CaseResponse DTO для ответа с информацией о кейсе
// @Description DTO для ответа с информацией о кейсе
type CaseResponse struct {
	ID         int64     `json:"id"`
	Phone      string    `json:"phone"`
	Postcode   string    `json:"postcode,omitempty"`
	People     int       `json:"people"`
	Needs      []string  `json:"needs"`
	Medical    bool      `json:"medical"`
	Latitude   *float64  `json:"lat,omitempty"`
	Longitude  *float64  `json:"lng,omitempty"`
	CrewName   string    `json:"crew"`
	EtaMinutes *int      `json:"eta,omitempty"`
	Reply      string    `json:"reply"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// CloseCaseResponse DTO для ответа на закрытие кейса
// @Description DTO для ответа на закрытие кейса
type CloseCaseResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

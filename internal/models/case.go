package models

import "time"

// Статусы кейса. Переход только open -> closed, в одну сторону.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// CrewUnassigned - значение-страж для кейса без назначенного экипажа
const CrewUnassigned = "Unassigned"

// NeedMedical - категория потребности, подсвечиваемая на дашборде
const NeedMedical = "medical"

// Case представляет один SOS-кейс и состояние его обработки
type Case struct {
	ID         int64     `json:"id"`
	Phone      string    `json:"phone"`
	RawMsg     string    `json:"raw_msg"`
	Postcode   string    `json:"postcode,omitempty"`
	People     int       `json:"people"`
	Needs      []string  `json:"needs"`
	Latitude   *float64  `json:"lat,omitempty"`
	Longitude  *float64  `json:"lng,omitempty"`
	CrewName   string    `json:"crew"`
	EtaMinutes *int      `json:"eta,omitempty"`
	Reply      string    `json:"reply"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

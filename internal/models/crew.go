package models

// Crew представляет спасательный экипаж с фиксированной базой.
// Экипажи создаются сидированием, система их только читает.
type Crew struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	BaseLat float64 `json:"base_lat"`
	BaseLng float64 `json:"base_lng"`
}

// Coordinates - пара координат в градусах
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

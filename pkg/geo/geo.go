package geo

import "math"

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

// DistanceKm вычисляет расстояние большого круга между двумя точками
// по формуле гаверсинуса. Координаты задаются в градусах.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := phi2 - phi1
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// EtaMinutes оценивает время прибытия в минутах при постоянной средней скорости.
// Линейная модель без маршрутизации и учета дорожной сети: round(km / speed * 60).
func EtaMinutes(distanceKm, speedKmh float64) int {
	return int(math.Round(distanceKm / speedKmh * 60))
}

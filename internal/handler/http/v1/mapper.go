package v1

import (
	"slices"

	"github.com/shenikar/sos_intake_system/internal/models"
)

// ModelToCaseResponse преобразует доменную модель в DTO для ответа.
// Флаг medical вычисляется здесь: это контракт подсветки строк на дашборде.
func ModelToCaseResponse(model *models.Case) *CaseResponse {
	return &CaseResponse{
		ID:         model.ID,
		Phone:      model.Phone,
		Postcode:   model.Postcode,
		People:     model.People,
		Needs:      model.Needs,
		Medical:    slices.Contains(model.Needs, models.NeedMedical),
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		CrewName:   model.CrewName,
		EtaMinutes: model.EtaMinutes,
		Reply:      model.Reply,
		Status:     model.Status,
		CreatedAt:  model.CreatedAt,
	}
}

// ModelsToCaseResponses преобразует слайс моделей в слайс DTO
func ModelsToCaseResponses(models []*models.Case) []*CaseResponse {
	responses := make([]*CaseResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCaseResponse(model)
	}
	return responses
}

package models

import "github.com/craftopia-app/Craftopia-ReservationService/internal/domain"

// Response модели

// CraftsmanResponse ответ с данными мастера из каталога
type CraftsmanResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Craft     string   `json:"craft"`
	City      string   `json:"city"`
	Rating    float64  `json:"rating"`
	PriceFrom *float64 `json:"priceFrom,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
}

// CraftsmanListResponse ответ со списком мастеров
type CraftsmanListResponse struct {
	Craftsmen []CraftsmanResponse `json:"craftsmen"`
}

// CraftResponse ответ с данными каталожной работы
type CraftResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
}

// CraftListResponse ответ со списком каталожных работ
type CraftListResponse struct {
	Crafts []CraftResponse `json:"crafts"`
}

// Методы конвертации

// FromDomainCraftsman конвертирует доменную модель в DTO
func FromDomainCraftsman(c *domain.Craftsman) *CraftsmanResponse {
	if c == nil {
		return nil
	}

	return &CraftsmanResponse{
		ID:        c.ID,
		Name:      c.Name,
		Craft:     c.Craft,
		City:      c.City,
		Rating:    c.Rating,
		PriceFrom: c.PriceFrom,
		Bio:       c.Bio,
	}
}

// FromDomainCraftsmanList конвертирует список мастеров в DTO
func FromDomainCraftsmanList(craftsmen []*domain.Craftsman) *CraftsmanListResponse {
	resp := &CraftsmanListResponse{
		Craftsmen: make([]CraftsmanResponse, 0, len(craftsmen)),
	}

	for _, craftsman := range craftsmen {
		if converted := FromDomainCraftsman(craftsman); converted != nil {
			resp.Craftsmen = append(resp.Craftsmen, *converted)
		}
	}

	return resp
}

// FromDomainCraftList конвертирует список работ в DTO
func FromDomainCraftList(crafts []*domain.Craft) *CraftListResponse {
	resp := &CraftListResponse{
		Crafts: make([]CraftResponse, 0, len(crafts)),
	}

	for _, craft := range crafts {
		resp.Crafts = append(resp.Crafts, CraftResponse{
			ID:          craft.ID,
			Name:        craft.Name,
			Description: craft.Description,
			BasePrice:   craft.BasePrice,
		})
	}

	return resp
}

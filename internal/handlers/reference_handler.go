package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/h3nr7M3d/Praxia-sub000/internal/httperr"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// ReferenceHandler expõe os dados de referência (sedes, especialidades,
// médicos) que a UI usa para montar filtros e rotular resultados. Leitura
// simples; nada aqui participa do cálculo de agenda.
type ReferenceHandler struct {
	db *gorm.DB
}

func NewReferenceHandler(db *gorm.DB) *ReferenceHandler {
	return &ReferenceHandler{db: db}
}

func (h *ReferenceHandler) ListLocations(c *gin.Context) {
	var locations []models.Location
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&locations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_locations", "Erro ao listar sedes.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (h *ReferenceHandler) ListSpecialties(c *gin.Context) {
	var specialties []models.Specialty
	if err := h.db.
		Order("name ASC").
		Find(&specialties).Error; err != nil {

		httperr.Internal(c, "failed_to_list_specialties", "Erro ao listar especialidades.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

func (h *ReferenceHandler) ListPractitioners(c *gin.Context) {
	q := h.db.
		Preload("Specialty").
		Where("active = true")

	var parseErr bool
	if id := queryUint(c, "specialty_id", &parseErr); id != nil {
		q = q.Where("specialty_id = ?", *id)
	}
	if parseErr {
		httperr.BadRequest(c, "invalid_specialty_id", "Filtro inválido.")
		return
	}

	var practitioners []models.Practitioner
	if err := q.Order("name ASC").Find(&practitioners).Error; err != nil {
		httperr.Internal(c, "failed_to_list_practitioners", "Erro ao listar médicos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"practitioners": practitioners})
}

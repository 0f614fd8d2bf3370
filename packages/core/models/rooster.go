package models

type Phenotype string

const (
	PhenotypeLiso Phenotype = "liso"
	PhenotypePava Phenotype = "pava"
)

func (p Phenotype) Valid() bool {
	return p == PhenotypeLiso || p == PhenotypePava
}

type AgeCategory string

const (
	AgeCategoryPollo AgeCategory = "pollo" // juvenile
	AgeCategoryGallo AgeCategory = "gallo" // adult
)

// JuvenileAgeLimitMonths is the age from which a rooster counts as adult.
const JuvenileAgeLimitMonths = 12

// DefaultBreederPlateID is stored when no breeder plate was given.
const DefaultBreederPlateID = "N/A"

func AgeCategoryFor(ageMonths int) AgeCategory {
	if ageMonths < JuvenileAgeLimitMonths {
		return AgeCategoryPollo
	}
	return AgeCategoryGallo
}

// Rooster is a gallo entered for one tournament day. Weight is in ounces.
type Rooster struct {
	ID             string      `json:"id"`
	RingID         string      `json:"ring_id"`
	MarkingID      string      `json:"marking_id,omitempty"`
	BreederPlateID string      `json:"breeder_plate_id"`
	Color          string      `json:"color"`
	TeamID         string      `json:"team_id"`
	Weight         int         `json:"weight"`
	AgeMonths      int         `json:"age_months"`
	Mark           int         `json:"mark"`
	Phenotype      Phenotype   `json:"phenotype"`
	AgeCategory    AgeCategory `json:"age_category"`
}

// DTOs

type SaveRoosterRequest struct {
	RingID         string    `json:"ring_id" binding:"required"`
	MarkingID      string    `json:"marking_id,omitempty"`
	BreederPlateID string    `json:"breeder_plate_id,omitempty"`
	Color          string    `json:"color" binding:"required"`
	TeamID         string    `json:"team_id" binding:"required"`
	Weight         int       `json:"weight" binding:"required,gt=0"`
	AgeMonths      int       `json:"age_months"`
	Mark           int       `json:"mark"`
	Phenotype      Phenotype `json:"phenotype" binding:"required,oneof=liso pava"`
}

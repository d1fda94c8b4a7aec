package models

// DetailRequest identifies a selected location for description generation.
type DetailRequest struct {
	LocationName    string `json:"locationName" validate:"required"`
	LocationType    string `json:"locationType" validate:"required"`
	LocationAddress string `json:"locationAddress" validate:"required"`
	AdditionalInfo  string `json:"additionalInfo,omitempty"`
}

// DetailResponse carries the generated descriptive prose. Descriptions are
// regenerated on every selection; nothing is cached.
type DetailResponse struct {
	DetailedDescription string `json:"detailedDescription"`
}

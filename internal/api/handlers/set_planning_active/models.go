package set_planning_active

// SetActiveRequest HTTP request model
// Указатель различает пропущенное поле и явный false
type SetActiveRequest struct {
	Active *bool `json:"active"`
}

// SetActiveResponse HTTP response model
type SetActiveResponse struct {
	ServiceID int64 `json:"serviceId"`
	Active    bool  `json:"active"`
}

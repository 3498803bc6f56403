package dto

import "time"

// CreatePlanRequest alta de plan de producción.
type CreatePlanRequest struct {
	ProductName string    `json:"product" validate:"required,min=1,max=200"`
	PlannedDate time.Time `json:"date" validate:"required"`
	Quantity    int       `json:"quantity" validate:"gt=0"`
}

// PlanResponse salida de plan.
type PlanResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	ProductName string    `json:"product"`
	PlannedDate time.Time `json:"date"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	Actions     []string  `json:"actions"`
}

// CreateBatchRequest alta manual de lote.
type CreateBatchRequest struct {
	ProductName string `json:"product" validate:"required,min=1,max=200"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
}

// QualityCheckRequest resultado del control de calidad.
type QualityCheckRequest struct {
	Passed bool `json:"passed"`
}

// BatchResponse salida de lote.
type BatchResponse struct {
	ID          string     `json:"id"`
	BatchCode   string     `json:"batchCode"`
	PlanID      string     `json:"planId,omitempty"`
	ProductName string     `json:"product"`
	Quantity    int        `json:"quantity"`
	StartTime   time.Time  `json:"startTime"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Status      string     `json:"status"`
	Actions     []string   `json:"actions"`
}

// StartPlanResponse plan en curso y el lote creado.
type StartPlanResponse struct {
	Plan  PlanResponse  `json:"plan"`
	Batch BatchResponse `json:"batch"`
}

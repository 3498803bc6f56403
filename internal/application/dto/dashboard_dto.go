package dto

import "time"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalOrders       int             `json:"totalOrders"`
	PendingOrders     int             `json:"pendingOrders"`
	ActiveStores      int             `json:"activeStores"`
	ProductionBatches int             `json:"productionBatches"` // lotes no completados
	LowStockItems     int             `json:"lowStockItems"`
	RecentOrders      []OrderResponse `json:"recentOrders"`
	RecentProduction  []BatchResponse `json:"recentProduction"`
	GeneratedAt       time.Time       `json:"generatedAt"`
}

// ActivityDTO entrada del registro de actividad.
type ActivityDTO struct {
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	Code     string    `json:"code"`
	Status   string    `json:"status,omitempty"`
	Actor    string    `json:"actor,omitempty"`
	At       time.Time `json:"at"`
}

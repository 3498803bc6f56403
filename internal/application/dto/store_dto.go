package dto

import "time"

// CreateStoreRequest alta de tienda franquiciada.
type CreateStoreRequest struct {
	StoreName string `json:"storeName" validate:"required,min=1,max=200"`
	KitchenID string `json:"kitchenId"`
	Address   string `json:"address" validate:"omitempty,max=300"`
}

// UpdateStoreRequest cambios de tienda.
type UpdateStoreRequest struct {
	StoreName *string `json:"storeName" validate:"omitempty,min=1,max=200"`
	KitchenID *string `json:"kitchenId"`
	Address   *string `json:"address" validate:"omitempty,max=300"`
}

// StoreResponse salida de tienda.
type StoreResponse struct {
	StoreID     string    `json:"storeId"`
	Code        string    `json:"code"`
	KitchenID   string    `json:"kitchenId"`
	KitchenName string    `json:"kitchenName"`
	StoreName   string    `json:"storeName"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateKitchenRequest alta de cocina central.
type CreateKitchenRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateKitchenRequest cambios de cocina central.
type UpdateKitchenRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address" validate:"omitempty,max=300"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Status  *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// KitchenResponse salida de cocina central.
type KitchenResponse struct {
	CentralKitchenID string `json:"centralKitchenId"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
}

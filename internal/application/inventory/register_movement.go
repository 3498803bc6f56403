package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
)

// MovementInput entrada de un movimiento de stock ya resuelta a un ítem concreto.
// UnitCost solo aplica a entradas de ingredientes.
type MovementInput struct {
	Actor     session.Identity
	Kind      string // ingredient, product
	ItemID    string
	Type      string // in, out, set
	Quantity  int
	UnitCost  *decimal.Decimal
	Reference string
	At        time.Time
}

// FromRequest adapta el request HTTP a MovementInput con fecha at.
func FromRequest(actor session.Identity, kind, itemID, movementType string, in dto.StockAdjustRequest, at time.Time) MovementInput {
	return MovementInput{
		Actor:     actor,
		Kind:      kind,
		ItemID:    itemID,
		Type:      movementType,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		Reference: in.Reference,
		At:        at,
	}
}

func (in MovementInput) movement(before, after int) *entity.StockMovement {
	return &entity.StockMovement{
		ID:        uuid.New().String(),
		ItemKind:  in.Kind,
		ItemID:    in.ItemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Before:    before,
		After:     after,
		Reference: in.Reference,
		CreatedAt: in.At,
		CreatedBy: in.Actor.Username,
	}
}

package repository

// Transition cambio de estado que el dominio ya aplicó sobre la entidad. Los back ends
// locales lo guardan como un Update; el remoto lo envía al sub-endpoint de la acción.
type Transition string

const (
	OrderProcess Transition = "process"
	OrderShip    Transition = "ship"
	OrderDeliver Transition = "deliver"

	ShipmentDispatch  Transition = "dispatch"
	ShipmentDelivered Transition = "delivered"

	PlanStart    Transition = "start"
	PlanComplete Transition = "complete-plan"

	BatchComplete      Transition = "complete"
	BatchSendToQC      Transition = "send-to-qc"
	BatchQualityPassed Transition = "quality-passed"
	BatchQualityFailed Transition = "quality-failed"
)

package repository

// Repos agrupa todos los puertos de persistencia de un back end. Un TxRunner entrega
// una instancia atada a la transacción en curso.
type Repos struct {
	Users        UserRepository
	Stores       FranchiseStoreRepository
	Kitchens     CentralKitchenRepository
	ProductTypes ProductTypeRepository
	Products     ProductRepository
	Ingredients  IngredientRepository
	Movements    StockMovementRepository
	Recipes      RecipeRepository
	Orders       OrderRepository
	Shipments    ShipmentRepository
	Plans        ProductionPlanRepository
	Batches      ProductionBatchRepository
}

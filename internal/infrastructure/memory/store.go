// Package memory implementa los repositorios en memoria (variante de datos de demostración
// y doble de pruebas). Las transacciones trabajan sobre una copia y la publican al final.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var _ ports.TxRunner = (*Store)(nil)

type dataset struct {
	users        []entity.User
	stores       []entity.FranchiseStore
	kitchens     []entity.CentralKitchen
	productTypes []entity.ProductType
	products     []entity.Product
	ingredients  []entity.Ingredient
	movements    []entity.StockMovement
	recipes      []entity.Recipe
	orders       []entity.Order
	shipments    []entity.Shipment
	plans        []entity.ProductionPlan
	batches      []entity.ProductionBatch
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		users:        append([]entity.User(nil), d.users...),
		stores:       append([]entity.FranchiseStore(nil), d.stores...),
		kitchens:     append([]entity.CentralKitchen(nil), d.kitchens...),
		productTypes: append([]entity.ProductType(nil), d.productTypes...),
		products:     append([]entity.Product(nil), d.products...),
		ingredients:  append([]entity.Ingredient(nil), d.ingredients...),
		movements:    append([]entity.StockMovement(nil), d.movements...),
		shipments:    append([]entity.Shipment(nil), d.shipments...),
		plans:        append([]entity.ProductionPlan(nil), d.plans...),
		batches:      append([]entity.ProductionBatch(nil), d.batches...),
	}
	c.recipes = make([]entity.Recipe, len(d.recipes))
	for i, r := range d.recipes {
		c.recipes[i] = cloneRecipe(r)
	}
	c.orders = make([]entity.Order, len(d.orders))
	for i, o := range d.orders {
		c.orders[i] = cloneOrder(o)
	}
	return c
}

// Store contenedor en memoria de todas las colecciones.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: &dataset{}}
}

// Repos repositorios sobre el store (cada llamada toma su propio lock).
func (s *Store) Repos() repository.Repos {
	return reposFor(view{s: s})
}

// Run ejecuta fn sobre una copia del dataset con el lock de escritura tomado. Si fn
// termina sin error la copia reemplaza al dataset; si falla se descarta.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.data.clone()
	if err := fn(reposFor(view{s: s, tx: work})); err != nil {
		return err
	}
	s.data = work
	return nil
}

func reposFor(v view) repository.Repos {
	return repository.Repos{
		Users:        UserRepo{v},
		Stores:       FranchiseStoreRepo{v},
		Kitchens:     CentralKitchenRepo{v},
		ProductTypes: ProductTypeRepo{v},
		Products:     ProductRepo{v},
		Ingredients:  IngredientRepo{v},
		Movements:    StockMovementRepo{v},
		Recipes:      RecipeRepo{v},
		Orders:       OrderRepo{v},
		Shipments:    ShipmentRepo{v},
		Plans:        PlanRepo{v},
		Batches:      BatchRepo{v},
	}
}

// view resuelve el dataset: el de la transacción en curso (ya bloqueado) o el del store.
type view struct {
	s  *Store
	tx *dataset
}

func (v view) read(fn func(d *dataset) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return fn(v.s.data)
}

func (v view) write(fn func(d *dataset) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return fn(v.s.data)
}

func cloneOrder(o entity.Order) entity.Order {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	return o
}

func cloneRecipe(r entity.Recipe) entity.Recipe {
	r.Ingredients = append([]entity.RecipeIngredient(nil), r.Ingredients...)
	return r
}

func same[T any](v T) T { return v }

package entity

// PageID sección navegable de la consola.
type PageID string

const (
	PageHome       PageID = "home"
	PageDashboard  PageID = "dashboard"
	PageProduction PageID = "production"
	PageInventory  PageID = "inventory"
	PageOrders     PageID = "orders"
	PageRecipes    PageID = "recipes"
	PageStores     PageID = "stores"
	PageUsers      PageID = "users"
)

// AllPages enumeración completa de páginas.
func AllPages() []PageID {
	return []PageID{PageHome, PageDashboard, PageProduction, PageInventory, PageOrders, PageRecipes, PageStores, PageUsers}
}

// ParsePage valida un identificador de página.
func ParsePage(s string) (PageID, bool) {
	for _, p := range AllPages() {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

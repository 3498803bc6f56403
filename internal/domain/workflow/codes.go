package workflow

import "fmt"

// Los códigos visibles se derivan del tamaño actual de la colección. Son una
// conveniencia de presentación: dos altas concurrentes pueden recibir el mismo código.

// NextOrderCode SO-2401, SO-2402...
func NextOrderCode(n int) string { return fmt.Sprintf("SO-%d", 2401+n) }

// NextShipmentCode SH-1102, SH-1103...
func NextShipmentCode(n int) string { return fmt.Sprintf("SH-%d", 1102+n) }

// NextBatchCode PB-1046, PB-1047...
func NextBatchCode(n int) string { return fmt.Sprintf("PB-%d", 1046+n) }

// NextPlanCode PP-001, PP-002...
func NextPlanCode(n int) string { return fmt.Sprintf("PP-%03d", n+1) }

func NextIngredientCode(n int) string { return fmt.Sprintf("ING-%03d", n+1) }

func NextProductCode(n int) string { return fmt.Sprintf("PRD-%03d", n+1) }

func NextStoreCode(n int) string { return fmt.Sprintf("ST-%03d", n+1) }

func NextRecipeCode(n int) string { return fmt.Sprintf("RCP-%03d", n+1) }

package inventory

import "time"

// SetClock fija el reloj del caso de uso en los tests.
func SetClock(uc *StockUseCase, now func() time.Time) { uc.now = now }

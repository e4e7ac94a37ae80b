package entities

import "time"

// Contador is the per-user sequence (contadores/{userId}). It is independent from
// the per-category OrderSequence counters that number orders; the two schemes
// are deliberately not unified.
type Contador struct {
	UserID    string    `json:"user_id"`
	Next      int64     `json:"siguiente"`
	LastOrder int64     `json:"ultima_orden"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// OrderSequence is a per-category counter (contadores/ordenes<Tipo>).
type OrderSequence struct {
	Type       OrderType `json:"tipo"`
	LastNumber int64     `json:"ultimo_numero"`
}

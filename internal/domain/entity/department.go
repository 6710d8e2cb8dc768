package entity

import (
	"time"

	"github.com/google/uuid"
)

// Department groups users. Names are unique.
type Department struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

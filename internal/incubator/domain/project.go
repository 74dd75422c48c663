package domain

import (
	"time"

	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

// MaxProjectNameLength bounds project names.
const MaxProjectNameLength = 100

type Project struct {
	ID          idx.ID
	UserID      idx.ID // owner; all access is scoped to this
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

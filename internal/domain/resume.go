package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-studio/internal/model"
)

// Resume is the persisted record: metadata plus the content payload stored
// as an opaque JSON blob. The payload must round-trip through JSON
// losslessly; that is the only contract the layout engine has with storage.
type Resume struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Title     string            `json:"title"`
	Template  string            `json:"template"`
	Data      *model.ResumeData `json:"data"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

package store

import (
	"time"

	"gorm.io/datatypes"

	"gallera-api/packages/core/tournament"
)

// sessionRowID is the primary key of the single tournament session row.
const sessionRowID = 1

type SessionRecord struct {
	ID         uint                                 `gorm:"primaryKey"`
	Phase      string                               `gorm:"size:32;not null"`
	CurrentDay int                                  `gorm:"not null;default:1"`
	Finished   bool                                 `gorm:"not null;default:false"`
	State      datatypes.JSONType[tournament.State] `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SessionRecord) TableName() string {
	return "tournament_sessions"
}

type SnapshotRecord struct {
	ID         uint                                 `gorm:"primaryKey;autoIncrement"`
	Phase      string                               `gorm:"size:32;not null"`
	CurrentDay int                                  `gorm:"not null"`
	State      datatypes.JSONType[tournament.State] `gorm:"not null"`
	CreatedAt  time.Time                            `gorm:"index"`
}

func (SnapshotRecord) TableName() string {
	return "session_snapshots"
}

// Snapshot describes a stored backup without its payload.
type Snapshot struct {
	ID         uint      `json:"id"`
	Phase      string    `json:"phase"`
	CurrentDay int       `json:"current_day"`
	CreatedAt  time.Time `json:"created_at"`
}

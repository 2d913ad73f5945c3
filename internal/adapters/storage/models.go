package storage

import "time"

// ExpansionModel is the GORM model for explorer expansion flags
type ExpansionModel struct {
	CreatedAt time.Time
	Expanded  bool   `gorm:"not null;default:false"`
	Path      string `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ExpansionModel) TableName() string { return "tree_expansion" }

// EventModel is the GORM model for journaled terminal lines
type EventModel struct {
	CreatedAt time.Time `gorm:"index:idx_event_created"`
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Seq       int64     `gorm:"not null"`
	SessionID string    `gorm:"not null;index:idx_event_session"`
	Severity  string    `gorm:"not null;default:'info';check:severity IN ('info','success','error')"`
	Text      string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string { return "event_journal" }

// RunModel is the GORM model for recorded pipeline starts
type RunModel struct {
	Accepted     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"index:idx_run_created"`
	Description  string    `gorm:"not null;default:''"`
	Error        string    `gorm:"default:''"`
	HasImage     bool      `gorm:"not null;default:false"`
	ID           string    `gorm:"primaryKey"`
	ModelID      string    `gorm:"not null;default:''"`
	Requirements string    `gorm:"default:''"`
}

// TableName specifies the table name for GORM
func (RunModel) TableName() string { return "runs" }

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Default project status labels as shown in the UI.
const (
	ProjectStatusActive = "En cours"
	ProjectStatusPaused = "En pause"
	ProjectStatusDone   = "Terminé"
)

// NextStep is an embedded checklist item inside a project. Each step gets a
// stable ID at write time so toggling does not depend on text equality.
type NextStep struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Project represents a project owned by a single user. Status is free-form
// text; the UI constrains it to the labels above.
type Project struct {
	ID          string                        `json:"id" gorm:"primaryKey"`
	Title       string                        `json:"title" gorm:"not null"`
	Description *string                       `json:"description"`
	Status      string                        `json:"status" gorm:"not null;default:'En cours'"`
	NextSteps   datatypes.JSONSlice[NextStep] `json:"nextSteps"`
	Deployment  *string                       `json:"deployment"`
	Order       *int                          `json:"order" gorm:"column:display_order"`
	UserID      string                        `json:"-" gorm:"column:user_id;index"`
	CreatedAt   time.Time                     `json:"createdAt"`
	UpdatedAt   time.Time                     `json:"updatedAt"`
}

// TableName specifies the table name for Project Model
func (Project) TableName() string {
	return "projects"
}

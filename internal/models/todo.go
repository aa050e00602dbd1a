package models

import "time"

type TodoState string

const (
	StatePlanned    TodoState = "planned"
	StateInProgress TodoState = "in-progress"
	StateDone       TodoState = "done"
)

// States lists every valid state in display order
var States = []TodoState{StatePlanned, StateInProgress, StateDone}

// Valid reports whether s is one of the enumerated states
func (s TodoState) Valid() bool {
	switch s {
	case StatePlanned, StateInProgress, StateDone:
		return true
	}
	return false
}

type TodoCategory string

const (
	CategorySchool TodoCategory = "school"
	CategoryWork   TodoCategory = "work"
	CategoryLife   TodoCategory = "life"
	CategoryOther  TodoCategory = "other"
)

// Categories lists every valid category in display order
var Categories = []TodoCategory{CategorySchool, CategoryWork, CategoryLife, CategoryOther}

// Valid reports whether c is one of the enumerated categories
func (c TodoCategory) Valid() bool {
	switch c {
	case CategorySchool, CategoryWork, CategoryLife, CategoryOther:
		return true
	}
	return false
}

// Todo is a single to-do record. Only State changes after creation.
type Todo struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	State       TodoState    `gorm:"type:varchar(20);not null;default:'planned';index:idx_todos_state;check:chk_todos_state,state IN ('planned','in-progress','done')" json:"state"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;<-:create" json:"created_at"`
	CreatedBy   *string      `gorm:"type:text" json:"created_by"`
	Category    TodoCategory `gorm:"type:varchar(20);not null;default:'other';index:idx_todos_category;check:chk_todos_category,category IN ('school','work','life','other')" json:"category"`
}

func (Todo) TableName() string {
	return "todos"
}

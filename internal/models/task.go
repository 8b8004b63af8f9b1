package models

// Task is a stored task record. Names are not required to be unique.
type Task struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// TaskCreate is the input accepted by Tasks.Create.
type TaskCreate struct {
	Name string
}

// TaskPatch lists exactly the task fields an update may change.
// A nil field is left untouched.
type TaskPatch struct {
	Name *string
	Done *bool
}

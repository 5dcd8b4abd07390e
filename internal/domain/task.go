package domain

// Task represents a row of the tareas table. All mutable fields are supplied
// by the client as-is: there is no required-field validation, the status is a
// free-form string, and neither UserID nor CategoryID is checked against
// another table. DueDate is stored verbatim rather than parsed as a date.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	DueDate     string `json:"fecha_vencimiento"`
	Status      string `json:"estado"`
	UserID      int64  `json:"usuario_id"`
	CategoryID  int64  `json:"categoria_id"`
}

package domain

// ---------- Tipos de paginación / ordenamiento ----------

// OffsetPagination para paginación clásica limit/skip
type OffsetPagination struct {
	Limit  int
	Offset int
}

// Interfaz genérica para paginación
type Pagination interface{}

// Sort indica campo y dirección.
type Sort struct {
	Field string // ej. "createdAt", "price", "title"
	Desc  bool
}

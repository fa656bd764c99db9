package groups

// Group es la clasificación de especie/categoría (Bovinos, Bufalinos, Equinos...).
type Group struct {
	ID   int64
	Name string
}

// Family es una subclasificación dentro de un grupo.
type Family struct {
	Code    int64
	Name    string
	GroupID int64
}

package pets

// Pet representa una mascota del catálogo.
// El ID lo asigna el cliente al crear; el servidor no lo genera.
type Pet struct {
	ID   int
	Name string
	Tag  string // opcional, vacío = sin tag
}

// HasTag indica si la mascota trae tag.
func (p Pet) HasTag() bool {
	return p.Tag != ""
}

// SeedPets devuelve el set inicial con el que arranca cada store.
// Cada llamada devuelve un slice nuevo para que ningún store comparta backing array.
func SeedPets() []Pet {
	return []Pet{
		{ID: 1, Name: "Fufi", Tag: "ABC"},
		{ID: 2, Name: "Garfield", Tag: "XYZ"},
		{ID: 3, Name: "Puffa"},
		{ID: 4, Name: "Alan"},
	}
}

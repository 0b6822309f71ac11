package owners

// Owner representa a una persona del directorio. Puede no tener mascotas.
type Owner struct {
	ID   int64
	Name string
}

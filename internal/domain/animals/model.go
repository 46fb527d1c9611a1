package animals

// Animal representa un animal registrado en el catálogo.
// El ID lo asigna el store al persistir (hex de 24 caracteres);
// el cliente nunca lo elige ni puede cambiarlo.
type Animal struct {
	ID      string
	Name    string
	Species string
	Age     int
}

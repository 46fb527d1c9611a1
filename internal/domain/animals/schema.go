package animals

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate es el validador compartido del esquema (thread-safe, cachea
// la metadata de los structs).
var validate = validator.New()

// AnimalFields es el documento candidato que envía el cliente.
// Create y update comparten exactamente el mismo esquema.
// Age es puntero para distinguir "campo ausente" de "age: 0":
// required exige presencia, y cero es una edad válida.
type AnimalFields struct {
	Name    string `validate:"required"`
	Species string `validate:"required"`
	Age     *int   `validate:"required"`
}

// FieldError describe una regla de esquema incumplida en un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa los errores de campo de una escritura rechazada.
// Se produce antes de tocar el store: un documento inválido nunca persiste.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// Validate aplica las reglas del esquema sobre el documento normalizado.
// Devuelve nil si es válido o *ValidationError con el detalle por campo.
func (f AnimalFields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		out.Fields = append(out.Fields, FieldError{
			Field:   field,
			Message: fieldMessage(field, fe.Tag()),
		})
	}
	return out
}

func fieldMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// normalized recorta espacios en los campos de texto. El esquema exige
// texto no vacío, así que "   " cuenta como ausente.
func (f AnimalFields) normalized() AnimalFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Species = strings.TrimSpace(f.Species)
	return f
}

// toAnimal arma la entidad sin ID (el store lo asigna al persistir).
// Solo es válido después de Validate: asume Age presente.
func (f AnimalFields) toAnimal() Animal {
	return Animal{
		Name:    f.Name,
		Species: f.Species,
		Age:     *f.Age,
	}
}

package entity

// Level complejidad declarada de una función del catálogo.
type Level string

const (
	LevelSimple  Level = "Simple"
	LevelMedium  Level = "Medium"
	LevelComplex Level = "Complex"
)

// Valid indica si el nivel es Simple, Medium o Complex.
func (l Level) Valid() bool {
	return l == LevelSimple || l == LevelMedium || l == LevelComplex
}

// FunctionDescriptor capacidad publicada en el acceso rápido de un rol.
// Datos de referencia de solo lectura.
type FunctionDescriptor struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Level       Level  `yaml:"level" json:"level"`
	Sprint      string `yaml:"sprint" json:"sprint"`
	Status      string `yaml:"status" json:"status"`
}

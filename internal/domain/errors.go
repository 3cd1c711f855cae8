package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrConstraint    = errors.New("violación de restricción de integridad")
	ErrMissingColumn = errors.New("columna requerida ausente en el archivo")
	ErrUnsupported   = errors.New("formato de archivo no soportado")
)

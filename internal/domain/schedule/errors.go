package schedule

import "fmt"

// ConfigError aponta um registro de horário malformado (HH:MM inválido,
// dia da semana fora de 0..6 ou fim <= início). A janela é descartada,
// o restante da requisição segue normalmente.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// NotFoundError indica barbearia ou barbeiro inexistente.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// InvalidArgumentError rejeita a consulta antes de qualquer I/O.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

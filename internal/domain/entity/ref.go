package entity

import (
	"bytes"
	"encoding/json"
)

// Los serializers del backend entregan las relaciones de dos formas según el
// endpoint: como id numérico o como objeto expandido. Los tipos *Ref normalizan
// ambas: siempre exponen el id, y el objeto solo cuando vino expandido. Los
// consumidores resuelven id y etiqueta vía ID()/Label() en lugar de chequear
// el tipo en cada punto de uso.

// ProductRef referencia a un producto: id plano u objeto expandido.
type ProductRef struct {
	id      int64
	product *Product
}

// ProductID construye una referencia plana (para armar peticiones).
func ProductID(id int64) ProductRef { return ProductRef{id: id} }

// ID devuelve el identificador del producto, venga plano o expandido.
func (r ProductRef) ID() int64 {
	if r.product != nil {
		return r.product.ID
	}
	return r.id
}

// Expanded devuelve el producto embebido, o nil si la referencia vino plana.
func (r ProductRef) Expanded() *Product { return r.product }

// Label devuelve el nombre del producto, o fallback si no vino expandido.
func (r ProductRef) Label(fallback string) string {
	if r.product != nil && r.product.Name != "" {
		return r.product.Name
	}
	return fallback
}

func (r *ProductRef) UnmarshalJSON(data []byte) error {
	return unmarshalRef(data, &r.id, &r.product)
}

func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.product != nil {
		return json.Marshal(r.product)
	}
	return json.Marshal(r.id)
}

// CategoryRef referencia a una categoría: id plano u objeto expandido.
type CategoryRef struct {
	id       int64
	category *Category
}

// CategoryID construye una referencia plana.
func CategoryID(id int64) CategoryRef { return CategoryRef{id: id} }

func (r CategoryRef) ID() int64 {
	if r.category != nil {
		return r.category.ID
	}
	return r.id
}

func (r CategoryRef) Expanded() *Category { return r.category }

func (r CategoryRef) Label(fallback string) string {
	if r.category != nil && r.category.Name != "" {
		return r.category.Name
	}
	return fallback
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	return unmarshalRef(data, &r.id, &r.category)
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.category != nil {
		return json.Marshal(r.category)
	}
	return json.Marshal(r.id)
}

// BatchRef referencia a un lote: id plano u objeto expandido.
type BatchRef struct {
	id    int64
	batch *Batch
}

// BatchID construye una referencia plana.
func BatchID(id int64) BatchRef { return BatchRef{id: id} }

func (r BatchRef) ID() int64 {
	if r.batch != nil {
		return r.batch.ID
	}
	return r.id
}

func (r BatchRef) Expanded() *Batch { return r.batch }

// Label devuelve el código humano del lote, o fallback si no vino expandido.
func (r BatchRef) Label(fallback string) string {
	if r.batch != nil && r.batch.Code != "" {
		return r.batch.Code
	}
	return fallback
}

func (r *BatchRef) UnmarshalJSON(data []byte) error {
	return unmarshalRef(data, &r.id, &r.batch)
}

func (r BatchRef) MarshalJSON() ([]byte, error) {
	if r.batch != nil {
		return json.Marshal(r.batch)
	}
	return json.Marshal(r.id)
}

// UserRef referencia a un usuario: id plano u objeto expandido.
type UserRef struct {
	id   int64
	user *User
}

func (r UserRef) ID() int64 {
	if r.user != nil {
		return r.user.ID
	}
	return r.id
}

func (r UserRef) Expanded() *User { return r.user }

func (r UserRef) Label(fallback string) string {
	if r.user != nil && r.user.Username != "" {
		return r.user.Username
	}
	return fallback
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	return unmarshalRef(data, &r.id, &r.user)
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.user != nil {
		return json.Marshal(r.user)
	}
	return json.Marshal(r.id)
}

// unmarshalRef decodifica id numérico u objeto expandido. null deja la
// referencia en cero.
func unmarshalRef[T any](data []byte, id *int64, obj **T) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		v := new(T)
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		*obj = v
		return nil
	}
	return json.Unmarshal(data, id)
}

package repositories

import (
	stderrors "errors"
	"fmt"

	"chat-xml/errors"
	"chat-xml/storage"
)

// Codec maps an entity to and from its element form.
type Codec[T any] interface {
	Encode(entity T) storage.Node
	Decode(node storage.Node) (T, error)
	ID(entity T) string
}

// Repository is the typed CRUD wrapper around the store for one entity kind.
// The *In variants take part in a caller's transaction; the others open their own.
type Repository[T any] struct {
	store     *storage.Store
	kind      storage.Kind
	codec     Codec[T]
	notFound  error
	duplicate error
}

func NewRepository[T any](store *storage.Store, kind storage.Kind, codec Codec[T], notFound, duplicate error) Repository[T] {
	return Repository[T]{store: store, kind: kind, codec: codec, notFound: notFound, duplicate: duplicate}
}

// Create fails with the duplicate error when the id is taken; the store is left
// untouched in that case.
func (r Repository[T]) Create(entity T) error {
	return r.store.Update(func(tx *storage.Tx) error {
		return r.CreateIn(tx, entity)
	})
}

func (r Repository[T]) CreateIn(tx *storage.Tx, entity T) error {
	return r.translate(tx.Add(r.kind, r.codec.Encode(entity)))
}

func (r Repository[T]) FindByID(id string) (T, error) {
	var entity T
	err := r.store.View(func(v *storage.View) error {
		var err error
		entity, err = r.FindByIDIn(v, id)
		return err
	})
	return entity, err
}

func (r Repository[T]) FindByIDIn(reader storage.Reader, id string) (T, error) {
	node, ok := reader.Find(r.kind, id)
	if !ok {
		var zero T
		return zero, r.notFound
	}
	return r.decode(node)
}

// FindAll returns entities in document order, which is insertion order.
func (r Repository[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.store.View(func(v *storage.View) error {
		var err error
		entities, err = r.FindAllIn(v)
		return err
	})
	return entities, err
}

func (r Repository[T]) FindAllIn(reader storage.Reader) ([]T, error) {
	nodes := reader.All(r.kind)
	entities := make([]T, 0, len(nodes))
	for _, node := range nodes {
		entity, err := r.decode(node)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Update replaces every child of the stored element.
func (r Repository[T]) Update(entity T) error {
	return r.store.Update(func(tx *storage.Tx) error {
		return r.UpdateIn(tx, entity)
	})
}

func (r Repository[T]) UpdateIn(tx *storage.Tx, entity T) error {
	return r.translate(tx.Replace(r.kind, r.codec.Encode(entity)))
}

func (r Repository[T]) Delete(id string) error {
	return r.store.Update(func(tx *storage.Tx) error {
		return r.DeleteIn(tx, id)
	})
}

func (r Repository[T]) DeleteIn(tx *storage.Tx, id string) error {
	return r.translate(tx.Delete(r.kind, id))
}

// DeleteWhereIn removes every entity accepted by match and returns how many went.
func (r Repository[T]) DeleteWhereIn(tx *storage.Tx, match func(T) bool) (int, error) {
	var decodeErr error
	removed, err := tx.DeleteWhere(r.kind, func(node storage.Node) bool {
		entity, err := r.decode(node)
		if err != nil {
			decodeErr = err
			return false
		}
		return match(entity)
	})
	if err != nil {
		return removed, err
	}
	return removed, decodeErr
}

func (r Repository[T]) Exists(id string) (bool, error) {
	var exists bool
	err := r.store.View(func(v *storage.View) error {
		exists = v.Exists(r.kind, id)
		return nil
	})
	return exists, err
}

func (r Repository[T]) ExistsIn(reader storage.Reader, id string) bool {
	return reader.Exists(r.kind, id)
}

func (r Repository[T]) decode(node storage.Node) (T, error) {
	entity, err := r.codec.Decode(node)
	if err != nil {
		return entity, fmt.Errorf("decode %s[id=%s]: %w", r.kind.Element, node.ID(), err)
	}
	return entity, nil
}

func (r Repository[T]) translate(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, errors.ErrElementNotFound):
		return r.notFound
	case stderrors.Is(err, errors.ErrAlreadyExists):
		return r.duplicate
	default:
		return err
	}
}

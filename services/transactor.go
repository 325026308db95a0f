package services

import "chat-xml/storage"

// Transactor runs service operations against one store transaction so every
// check and every write of an operation sees the same document. *storage.Store
// satisfies it.
type Transactor interface {
	Update(fn func(tx *storage.Tx) error) error
	View(fn func(v *storage.View) error) error
}

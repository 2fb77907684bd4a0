package model

import (
	"log/slog"

	"github.com/tdewolff/gridmerge"
)

type transaction struct {
	doc      *Document
	name     string
	snapshot elements
	nextID   gridmerge.ElementID
	done     bool
}

// Begin starts a transaction. Only one transaction can be active at a time.
func (doc *Document) Begin(name string) (gridmerge.Transaction, error) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	if doc.tx != nil {
		return nil, ErrTransactionActive
	}
	doc.tx = &transaction{
		doc:      doc,
		name:     name,
		snapshot: doc.elems.clone(),
		nextID:   doc.nextID,
	}
	return doc.tx, nil
}

// InTransaction returns true while a transaction is active.
func (doc *Document) InTransaction() bool {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.tx != nil
}

// Commit keeps all changes made since the transaction began.
func (tx *transaction) Commit() error {
	tx.doc.mu.Lock()
	defer tx.doc.mu.Unlock()
	if tx.done {
		return ErrTransactionClosed
	}
	tx.done = true
	tx.doc.tx = nil
	gridmerge.Logger().Debug("transaction committed", slog.String("name", tx.name))
	return nil
}

// Rollback restores the document to the state it had when the transaction began.
func (tx *transaction) Rollback() error {
	tx.doc.mu.Lock()
	defer tx.doc.mu.Unlock()
	if tx.done {
		return ErrTransactionClosed
	}
	tx.done = true
	tx.doc.elems = tx.snapshot
	tx.doc.nextID = tx.nextID
	tx.doc.tx = nil
	gridmerge.Logger().Debug("transaction rolled back", slog.String("name", tx.name))
	return nil
}

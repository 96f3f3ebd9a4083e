package services

import (
	"context"
	"fmt"

	"github.com/hisabapp/hisab/internal/apperrors"
	"github.com/hisabapp/hisab/internal/metrics"
	"github.com/hisabapp/hisab/internal/store"
)

// crudGateway is the slice of a gateway port the mutator needs. Every
// entity gateway in ports satisfies it.
type crudGateway[E store.Entity] interface {
	Create(ctx context.Context, e E) (E, error)
	Update(ctx context.Context, id string, e E) (E, error)
	Delete(ctx context.Context, id string) error
}

// mutator implements the uniform optimistic mutation shape for one
// collection: apply locally first, confirm remotely, reconcile with the
// server-returned entity or roll back to the pre-mutation snapshot.
// Failures always leave the store exactly as it was before the attempt
// and are returned to the caller, never swallowed.
type mutator[E store.Entity] struct {
	entity string
	coll   *store.Collection[E]
	gw     crudGateway[E]
}

// add appends the placeholder (carrying a temp id), issues the remote
// create and substitutes the placeholder with the server-confirmed entity.
// On failure the placeholder is removed again.
func (m *mutator[E]) add(ctx context.Context, placeholder E) (*E, error) {
	placeholderID := placeholder.EntityID()
	m.coll.Append(placeholder)

	confirmed, err := m.gw.Create(ctx, placeholder)
	if err != nil {
		m.coll.RemoveByID(placeholderID)
		metrics.Mutations.WithLabelValues(m.entity, "add", metrics.OutcomeRolledBack).Inc()
		return nil, fmt.Errorf("create %s: %w", m.entity, err)
	}

	m.coll.ReplaceByID(placeholderID, confirmed)
	metrics.Mutations.WithLabelValues(m.entity, "add", metrics.OutcomeConfirmed).Inc()
	return &confirmed, nil
}

// update snapshots the collection and applies the merge optimistically in
// one critical section, then issues the remote update and reconciles with
// the confirmed entity. On failure the whole collection is restored from
// the snapshot, not partially undone.
func (m *mutator[E]) update(ctx context.Context, id string, apply func(E) E) (*E, error) {
	snapshot, optimistic, ok := m.coll.ApplyByID(id, apply)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", m.entity, id, apperrors.ErrNotFound)
	}

	confirmed, err := m.gw.Update(ctx, id, optimistic)
	if err != nil {
		m.coll.Replace(snapshot)
		metrics.Mutations.WithLabelValues(m.entity, "update", metrics.OutcomeRolledBack).Inc()
		return nil, fmt.Errorf("update %s %q: %w", m.entity, id, err)
	}

	m.coll.ReplaceByID(id, confirmed)
	metrics.Mutations.WithLabelValues(m.entity, "update", metrics.OutcomeConfirmed).Inc()
	return &confirmed, nil
}

// delete snapshots the collection and removes the entity in one critical
// section, then runs the optional cascade, which removes dependents from
// their collections and returns a restore function. On failure both the
// entity's collection and every cascaded collection are restored.
func (m *mutator[E]) delete(ctx context.Context, id string, cascade func() (restore func())) error {
	snapshot, ok := m.coll.TakeByID(id)
	if !ok {
		return fmt.Errorf("%s %q: %w", m.entity, id, apperrors.ErrNotFound)
	}

	var restore func()
	if cascade != nil {
		restore = cascade()
	}

	if err := m.gw.Delete(ctx, id); err != nil {
		m.coll.Replace(snapshot)
		if restore != nil {
			restore()
		}
		metrics.Mutations.WithLabelValues(m.entity, "delete", metrics.OutcomeRolledBack).Inc()
		return fmt.Errorf("delete %s %q: %w", m.entity, id, err)
	}

	metrics.Mutations.WithLabelValues(m.entity, "delete", metrics.OutcomeConfirmed).Inc()
	return nil
}

package prisma

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/oneviews/prisma/errors"
)

// Interpret translates the reset into an action that drops every collection
// belonging to the store's project. Drops are issued concurrently with no
// ordering between them; the action settles once every drop has settled.
// Completed drops are not rolled back when a sibling drop fails.
func (ResetData) Interpret(b *ActionBuilder) (Action, error) {
	if !b.store.Config().AllowDestructive {
		return nil, errors.New(errors.Forbidden, "reset: destructive operations are disabled")
	}
	return func(ctx context.Context) (Result, error) {
		project := b.store.Project()
		names := project.CollectionNames()
		if len(names) == 0 {
			return UnitResult{}, nil
		}
		egp, ctx := errgroup.WithContext(ctx)
		for _, name := range names {
			name := name
			egp.Go(func() error {
				return b.store.DropCollection(ctx, name)
			})
		}
		if err := egp.Wait(); err != nil {
			return nil, errors.Wrap(err, 0, "reset: failed to truncate project %s", project.Name)
		}
		b.store.Logger().Info(ctx, "reset project data", map[string]any{
			"collections": len(names),
		})
		return UnitResult{}, nil
	}, nil
}

package common

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

func FillViewModel[T any](ctx context.Context, vmodel *T, r *http.Request, funcs ...func(ctx context.Context, vmodel *T, r *http.Request) error) error {
	for _, fn := range funcs {
		if err := fn(ctx, vmodel, r); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

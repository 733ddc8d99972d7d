package sendpigeon

import (
	"context"
	"net/http"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// Empty is the success payload of operations whose response carries no body.
type Empty struct{}

// execute performs a request and decodes the response into a fresh T.
// Every resource method funnels through here (or a sibling below), so retry,
// timeout, and error mapping behave identically across resources.
func execute[T any](ctx context.Context, c *api.Client, method, path string, body any, header http.Header) Result[*T] {
	out := new(T)
	if err := c.Do(ctx, method, path, body, out, header); err != nil {
		return Fail[*T](wrapError(err))
	}
	return Ok(out)
}

// executeSlice is execute for endpoints returning a bare JSON array.
func executeSlice[T any](ctx context.Context, c *api.Client, method, path string, body any) Result[[]T] {
	var out []T
	if err := c.Do(ctx, method, path, body, &out, nil); err != nil {
		return Fail[[]T](wrapError(err))
	}
	return Ok(out)
}

// executeEmpty is execute for endpoints whose response body is ignored.
func executeEmpty(ctx context.Context, c *api.Client, method, path string, body any) Result[Empty] {
	if err := c.Do(ctx, method, path, body, nil, nil); err != nil {
		return Fail[Empty](wrapError(err))
	}
	return Ok(Empty{})
}

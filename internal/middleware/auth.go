package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rateshelf/backend/pkg/xcontext"
)

// Authenticate resolves the requesting user from the Authorization
// header. Token verification happens at the edge gateway; what reaches
// this service is the already-verified subject, so an absent or
// malformed header simply means an anonymous request.
func Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	scheme, subject, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if found && scheme == "Bearer" && subject != "" {
		ctx = xcontext.WithRequestUserID(ctx, subject)
	}

	return ctx, nil
}

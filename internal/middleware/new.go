package middleware

import (
	"github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

// Middleware holds the gin middlewares shared by every route.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}

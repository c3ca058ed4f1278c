package types

import "context"

// Server is a calculator front end that runs until its client goes away
type Server interface {
	Serve(ctx context.Context) error
}

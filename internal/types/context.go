package types

import "context"

type operationKey struct{}

// WithOperation tags ctx with the public operation name ("search", "playlist", ...).
// The engine copies it onto NetworkError and ExtractionError.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey{}, name)
}

func OperationFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(operationKey{}).(string)
	return name, ok && name != ""
}

package input

import "context"

type RequestRunner interface {
	RunRequest(ctx context.Context, prompt string) (string, error)
	Model() string
}

package ports

import "context"

// URLOpener hands a URL to the operating system's default handler.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}

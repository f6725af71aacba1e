package observe_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/credentials/observe"
)

func ExampleMiddleware_Wrap() {
	mw, err := observe.MiddlewareFromObserver(observe.Noop())
	if err != nil {
		fmt.Println(err)
		return
	}

	resolve := mw.Wrap(func(ctx context.Context, meta observe.CredentialMeta) (string, error) {
		return "alice", nil
	})

	v, _ := resolve(context.Background(), observe.CredentialMeta{Name: "DB_USER", Backend: "vault"})
	fmt.Println(v)
	// Output:
	// alice
}

func ExampleCredentialMeta_SpanName() {
	fmt.Println(observe.CredentialMeta{Name: "DB_USER", Backend: "vault"}.SpanName())
	fmt.Println(observe.CredentialMeta{Name: "HOME"}.SpanName())
	// Output:
	// credentials.resolve.vault
	// credentials.resolve.env
}

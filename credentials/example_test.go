package credentials_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/credentials/credentials"
	"github.com/jonwraymond/credentials/secretfile"
)

func ExampleClient_Var() {
	env := map[string]string{"API_KEY": "k-123"}
	client, err := credentials.New(
		credentials.WithSecretfile(secretfile.Empty()),
		credentials.WithLookupEnv(func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	key, err := client.Var(context.Background(), "API_KEY")
	fmt.Println(key, err)

	_, err = client.Var(context.Background(), "DB_PASSWORD")
	fmt.Println(credentials.KindOf(err))
	fmt.Println(err)
	// Output:
	// k-123 <nil>
	// not_found
	// credentials: var DB_PASSWORD: secret: environment variable DB_PASSWORD is not set
}

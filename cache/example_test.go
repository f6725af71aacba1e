package cache_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/credentials/cache"
)

func ExampleMemo_Do() {
	memo := cache.NewMemo[string](nil)
	ctx := context.Background()

	fetches := 0
	fetch := func(context.Context) (string, error) {
		fetches++
		return "s3cr3t", nil
	}

	v1, _ := memo.Do(ctx, "API_KEY", fetch)
	v2, _ := memo.Do(ctx, "API_KEY", fetch)

	fmt.Println(v1 == v2, fetches)
	// Output:
	// true 1
}

func ExampleValidateKey() {
	fmt.Println(cache.ValidateKey("DB_PASSWORD"))
	fmt.Println(cache.ValidateKey("  "))
	// Output:
	// <nil>
	// cache: key is invalid
}

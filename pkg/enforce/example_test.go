package enforce_test

import (
	"context"
	"fmt"
	"time"

	"github.com/vnykmshr/godeadline/pkg/deadline"
	"github.com/vnykmshr/godeadline/pkg/enforce"
)

func ExampleRun() {
	value, err := enforce.Run(context.Background(), "fetch", deadline.For(time.Second),
		func(ctx context.Context) (string, error) {
			return "hello", nil
		})
	fmt.Println(value, err)
	// Output: hello <nil>
}

func ExampleRun_deadlineExceeded() {
	_, err := enforce.Run(context.Background(), "fetch", deadline.For(10*time.Millisecond),
		func(ctx context.Context) (string, error) {
			select {
			case <-time.After(time.Minute):
				return "done", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		})
	fmt.Println(err)
	// Output: work 'fetch' exceeded timeout of 10ms
}

func ExampleRunBlocking() {
	value, err := enforce.RunBlocking("compute", deadline.For(time.Second),
		func(cp *enforce.Checkpoint) (int, error) {
			total := 0
			for i := 1; i <= 10; i++ {
				cp.Check()
				total += i
			}
			return total, nil
		})
	fmt.Println(value, err)
	// Output: 55 <nil>
}

func ExampleDo() {
	err := enforce.Do(context.Background(), "cleanup", deadline.None(),
		func(ctx context.Context) error {
			return nil
		})
	fmt.Println(err)
	// Output: <nil>
}

package testutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCommand(t *testing.T) {
	type ctxKey struct{}
	var gotArgs []string

	root := &cobra.Command{Use: "root"}
	root.AddCommand(&cobra.Command{
		Use: "echo",
		RunE: func(cmd *cobra.Command, args []string) error {
			gotArgs = args
			fmt.Printf(`{"success":true,"data":{"value":%q}}`, cmd.Context().Value(ctxKey{}))
			return nil
		},
	})
	root.AddCommand(&cobra.Command{
		Use:  "fail",
		RunE: func(*cobra.Command, []string) error { return errors.New("boom") },
	})

	ctx := context.WithValue(context.Background(), ctxKey{}, "from-context")
	out, err := ExecuteCommand(t, ctx, root, "echo", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, gotArgs)
	assert.Equal(t, "from-context", JSONData(t, out)["value"])

	out, err = ExecuteCommand(t, ctx, root, "fail")
	assert.EqualError(t, err, "boom")
	assert.Empty(t, out, "errors are not printed to stdout")
}

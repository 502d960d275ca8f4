/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/billingtotal/datastore"
	"github.com/suparena/billingtotal/datastore/mock"
	"github.com/suparena/billingtotal/storagemodels"
)

var _ datastore.Scanner = (*mock.Scanner)(nil)

func item(id string) storagemodels.Item {
	return storagemodels.Item{"id": &types.AttributeValueMemberS{Value: id}}
}

func ids(page *storagemodels.Page) []string {
	out := make([]string, 0, len(page.Items))
	for _, it := range page.Items {
		out = append(out, it["id"].(*types.AttributeValueMemberS).Value)
	}
	return out
}

func TestMockScanner(t *testing.T) {
	ctx := context.Background()

	t.Run("SinglePage", func(t *testing.T) {
		scanner := mock.New(item("a"), item("b"))

		page, err := scanner.ScanPage(ctx, &storagemodels.ScanParams{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids(page))
		assert.False(t, page.HasMore())
	})

	t.Run("Empty", func(t *testing.T) {
		scanner := mock.New()

		page, err := scanner.ScanPage(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.False(t, page.HasMore())
		assert.Equal(t, 0, scanner.Count())
	})

	t.Run("Paged", func(t *testing.T) {
		scanner := mock.New(item("a"), item("b"), item("c")).WithPageSize(2)

		first, err := scanner.ScanPage(ctx, &storagemodels.ScanParams{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids(first))
		require.True(t, first.HasMore())

		second, err := scanner.ScanPage(ctx, &storagemodels.ScanParams{ExclusiveStartKey: first.LastEvaluatedKey})
		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, ids(second))
		assert.False(t, second.HasMore())

		calls := scanner.Calls()
		require.Len(t, calls, 2)
		assert.Empty(t, calls[0].ExclusiveStartKey)
		assert.Equal(t, first.LastEvaluatedKey, calls[1].ExclusiveStartKey)
	})

	t.Run("LimitOverridesPageSize", func(t *testing.T) {
		scanner := mock.New(item("a"), item("b"), item("c")).WithPageSize(2)

		page, err := scanner.ScanPage(ctx, &storagemodels.ScanParams{Limit: aws.Int32(1)})
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, ids(page))
		assert.True(t, page.HasMore())
	})

	t.Run("ErrorOnCall", func(t *testing.T) {
		boom := errors.New("boom")
		scanner := mock.New(item("a"), item("b")).WithPageSize(1).WithErrorOnCall(2, boom)

		first, err := scanner.ScanPage(ctx, &storagemodels.ScanParams{})
		require.NoError(t, err)

		_, err = scanner.ScanPage(ctx, &storagemodels.ScanParams{ExclusiveStartKey: first.LastEvaluatedKey})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := mock.New(item("a")).ScanPage(cancelled, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("ResetAndTableName", func(t *testing.T) {
		scanner := mock.New(item("a")).WithTableName("Payments")
		_, _ = scanner.ScanPage(ctx, nil)
		require.Len(t, scanner.Calls(), 1)

		scanner.Reset()
		assert.Empty(t, scanner.Calls())
		assert.Equal(t, "Payments", scanner.TableName())
	})
}

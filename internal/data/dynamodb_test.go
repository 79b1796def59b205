package data

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"github.com/aoideee/hexbooks/internal/application"
	"github.com/aoideee/hexbooks/internal/domain"
)

// fakeDynamo is an in-memory table that understands the two condition
// expressions DynamoStore sends and pages Scan results.
type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	order    []string
	pageSize int
	scans    int
	err      error
}

func newFakeDynamo(pageSize int) *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, pageSize: pageSize}
}

func keyOf(item map[string]types.AttributeValue) string {
	return item["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := keyOf(in.Item)
	_, exists := f.items[id]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "attribute_exists(id)":
		if !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	}
	if !exists {
		f.order = append(f.order, id)
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.scans++
	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN).Value)
	}
	end := min(start+f.pageSize, len(f.order))

	out := &dynamodb.ScanOutput{}
	for _, id := range f.order[start:end] {
		out.Items = append(out.Items, f.items[id])
	}
	if end < len(f.order) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return out, nil
}

func TestDynamoStore_Behaviour(t *testing.T) {
	checkStoreBehaviour(t, NewDynamoStore(newFakeDynamo(10), "book-table"))
}

func TestDynamoStore_LoadAllBooks_Follows_Pages(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo(3)
	store := NewDynamoStore(fake, "book-table")
	for _, b := range DefaultSeed() {
		require.NoError(t, store.PersistNewBook(ctx, b))
	}

	books, err := store.LoadAllBooks(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultSeed(), books)
	require.Equal(t, 2, fake.scans)
}

func TestDynamoStore_Omits_Empty_ISBN(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo(10)
	store := NewDynamoStore(fake, "book-table")
	book := DefaultSeed()[0]

	require.NoError(t, store.PersistNewBook(ctx, book))
	require.NotContains(t, fake.items[book.ID], "isbn")
}

func TestDynamoStore_Wraps_Client_Errors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo(10)
	fake.err = errors.New("ResourceNotFoundException")
	store := NewDynamoStore(fake, "book-table")

	_, err := store.LoadBook(ctx, domain.NewBookID())
	require.ErrorIs(t, err, fake.err)
	require.False(t, application.IsObjectNotFound(err))

	_, err = store.LoadAllBooks(ctx)
	require.ErrorIs(t, err, fake.err)

	err = store.PersistNewBook(ctx, DefaultSeed()[0])
	require.ErrorIs(t, err, fake.err)
}

package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/aoideee/hexbooks/internal/domain"
)

// DynamoConfig locates the DynamoDB table holding the books.
type DynamoConfig struct {
	Table    string
	Region   string
	Endpoint string // Optional, e.g. http://localhost:8000 for DynamoDB Local
}

// DynamoAPI is the part of *dynamodb.Client the store uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoStore keeps books in a DynamoDB table with "id" as the partition key.
type DynamoStore struct {
	client DynamoAPI
	table  string
}

// bookItem is the attribute layout of a stored book.
type bookItem struct {
	ID     string `dynamodbav:"id"`
	Author string `dynamodbav:"author"`
	Title  string `dynamodbav:"title"`
	ISBN   string `dynamodbav:"isbn,omitempty"`
}

// NewDynamoClient builds a DynamoDB client for cfg using the default AWS
// credential chain.
func NewDynamoClient(ctx context.Context, cfg DynamoConfig) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) LoadBook(ctx context.Context, id domain.BookID) (domain.BookState, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
	})
	if err != nil {
		return domain.BookState{}, fmt.Errorf("get book %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return domain.BookState{}, bookNotFound(id.String())
	}

	var item bookItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return domain.BookState{}, fmt.Errorf("unmarshal book %s: %w", id, err)
	}
	return domain.BookState(item), nil
}

// LoadAllBooks scans the whole table, following pagination.
func (s *DynamoStore) LoadAllBooks(ctx context.Context) ([]domain.BookState, error) {
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})

	books := []domain.BookState{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan books: %w", err)
		}

		var items []bookItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal books: %w", err)
		}
		for _, item := range items {
			books = append(books, domain.BookState(item))
		}
	}
	return books, nil
}

// PersistNewBook writes the book only if no item with its id exists.
func (s *DynamoStore) PersistNewBook(ctx context.Context, book domain.BookState) error {
	err := s.put(ctx, book, "attribute_not_exists(id)")
	if isConditionFailed(err) {
		return ErrDuplicateBook
	}
	return err
}

// PersistUpdatedBook overwrites the book only if an item with its id exists.
func (s *DynamoStore) PersistUpdatedBook(ctx context.Context, book domain.BookState) error {
	err := s.put(ctx, book, "attribute_exists(id)")
	if isConditionFailed(err) {
		return bookNotFound(book.ID)
	}
	return err
}

func (s *DynamoStore) put(ctx context.Context, book domain.BookState, condition string) error {
	item, err := attributevalue.MarshalMap(bookItem(book))
	if err != nil {
		return fmt.Errorf("marshal book %s: %w", book.ID, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String(condition),
	})
	if err != nil {
		return fmt.Errorf("put book %s: %w", book.ID, err)
	}
	return nil
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

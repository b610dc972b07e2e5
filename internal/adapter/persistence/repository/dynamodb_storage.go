package repository

import (
	"context"
	"fmt"
	"time"

	"preventa/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStoreTableName = "preventa_store"

// maxItemValueBytes keeps every item under DynamoDB's 400 KB item limit with
// room for the key and attribute names.
const maxItemValueBytes = 350 * 1024

type storeItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Chunks    int    `dynamodbav:"chunks,omitempty"`
}

// chunkItem holds one slice of a value too large for a single item. Binary
// so that a cut inside a multi-byte character is harmless.
type chunkItem struct {
	Key  string `dynamodbav:"key"`
	Part []byte `dynamodbav:"part"`
}

// DynamoStorage persists key-value documents in a single DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// Every write is a full replace of the document under the key, which matches
// how drafts, queues and catalog snapshots are written. Values larger than
// one item are split into chunk items "<key>#0", "<key>#1", ... and the head
// item records how many there are. Chunks are written before the head, so a
// failed write leaves the previous head pointing at a complete value.
type DynamoStorage struct {
	ddb       dynamoAPI
	tableName string
	chunkSize int
}

// dynamoAPI is the subset of *dynamodb.Client used by DynamoStorage.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ interfaces.IStorage = (*DynamoStorage)(nil)

func NewDynamoStorage(ddb *dynamodb.Client, tableName string) *DynamoStorage {
	return newDynamoStorage(ddb, tableName)
}

func newDynamoStorage(ddb dynamoAPI, tableName string) *DynamoStorage {
	return &DynamoStorage{
		ddb:       ddb,
		tableName: storeName(tableName, defaultStoreTableName),
		chunkSize: maxItemValueBytes,
	}
}

func chunkKey(key string, i int) string {
	return fmt.Sprintf("%s#%d", key, i)
}

func (s *DynamoStorage) getItem(ctx context.Context, key string, dst any) (bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *DynamoStorage) putItem(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoStorage) deleteItem(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

func (s *DynamoStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var it storeItem
	found, err := s.getItem(ctx, key, &it)
	if err != nil || !found {
		return nil, false, err
	}
	if it.Chunks == 0 {
		return []byte(it.Value), true, nil
	}

	value := make([]byte, 0, it.Chunks*s.chunkSize)
	for i := 0; i < it.Chunks; i++ {
		var c chunkItem
		found, err := s.getItem(ctx, chunkKey(key, i), &c)
		if err != nil {
			return nil, false, err
		}
		if !found {
			return nil, false, fmt.Errorf("%s: chunk %d of %d missing", key, i, it.Chunks)
		}
		value = append(value, c.Part...)
	}
	return value, true, nil
}

func (s *DynamoStorage) Set(ctx context.Context, key string, value []byte) error {
	var prev storeItem
	if _, err := s.getItem(ctx, key, &prev); err != nil {
		return err
	}

	head := storeItem{
		Key:       key,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if len(value) <= s.chunkSize {
		head.Value = string(value)
	} else {
		for start := 0; start < len(value); start += s.chunkSize {
			end := min(start+s.chunkSize, len(value))
			if err := s.putItem(ctx, chunkItem{Key: chunkKey(key, head.Chunks), Part: value[start:end]}); err != nil {
				return err
			}
			head.Chunks++
		}
	}
	if err := s.putItem(ctx, head); err != nil {
		return err
	}
	return s.deleteChunks(ctx, key, head.Chunks, prev.Chunks)
}

// deleteChunks removes the chunk items in [from, to).
func (s *DynamoStorage) deleteChunks(ctx context.Context, key string, from, to int) error {
	for i := from; i < to; i++ {
		if err := s.deleteItem(ctx, chunkKey(key, i)); err != nil {
			return err
		}
	}
	return nil
}

func (s *DynamoStorage) Delete(ctx context.Context, key string) error {
	var prev storeItem
	if _, err := s.getItem(ctx, key, &prev); err != nil {
		return err
	}
	if err := s.deleteItem(ctx, key); err != nil {
		return err
	}
	return s.deleteChunks(ctx, key, 0, prev.Chunks)
}

package repository

import (
	"context"

	"sgf_demandas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBlobsTableName = "sgf_blobs"

type blobItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// BlobDynamoStore persists named string blobs in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// Each blob is one item; a Set overwrites the whole item (last-write-wins,
// matching the single-operator persistence contract).

type BlobDynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBlobStore = (*BlobDynamoStore)(nil)

func NewBlobDynamoStore(ddb *dynamodb.Client) *BlobDynamoStore {
	return &BlobDynamoStore{
		ddb:       ddb,
		tableName: getenvDefault("BLOBS_TABLE", defaultBlobsTableName),
	}
}

func (s *BlobDynamoStore) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it blobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

func (s *BlobDynamoStore) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(blobItem{Key: key, Value: value})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

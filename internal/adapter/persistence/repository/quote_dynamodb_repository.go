package repository

import (
	"context"
	"encoding/json"
	"time"

	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID         string `dynamodbav:"id"`
	ClientName string `dynamodbav:"client_name"`
	Status     string `dynamodbav:"status"`
	QuoteData  string `dynamodbav:"quote_data"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists quote documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The document itself is stored as a JSON payload (quote_data); client_name
// and status are lifted to top-level attributes for listing and filtering.
// The store is append/update only: quotes are never deleted.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (*entities.QuoteDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) Insert(ctx context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
	it, err := toQuoteItem(doc)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	it.CreatedAt = now
	it.UpdatedAt = now

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
	it, err := toQuoteItem(doc)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: doc.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #client_name = :client_name, #status = :status, #quote_data = :quote_data, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":client_name": &types.AttributeValueMemberS{Value: it.ClientName},
			":status":      &types.AttributeValueMemberS{Value: it.Status},
			":quote_data":  &types.AttributeValueMemberS{Value: it.QuoteData},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#client_name": "client_name",
			"#status":      "status",
			"#quote_data":  "quote_data",
			"#updated_at":  "updated_at",
		},
	})
	if err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

func toQuoteItem(doc *entities.QuoteDocument) (quoteItem, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return quoteItem{}, err
	}
	clientName := doc.General.ClientName
	if clientName == "" {
		clientName = "Orçamento sem nome"
	}
	return quoteItem{
		ID:         doc.ID,
		ClientName: clientName,
		Status:     string(doc.Status),
		QuoteData:  string(data),
	}, nil
}

func fromQuoteItem(it quoteItem) (*entities.QuoteDocument, error) {
	var doc entities.QuoteDocument
	if err := json.Unmarshal([]byte(it.QuoteData), &doc); err != nil {
		return nil, err
	}
	doc.ID = it.ID
	if doc.Status == "" {
		doc.Status = entities.QuoteStatus(it.Status)
	}
	return &doc, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesJobIDIndex       = "job_id-index"
)

type quoteLineItemItem struct {
	ID              string `dynamodbav:"id"`
	Kind            string `dynamodbav:"kind"`
	Label           string `dynamodbav:"label"`
	Quantity        int64  `dynamodbav:"quantity"`
	UnitPriceCents  int64  `dynamodbav:"unit_price_cents"`
	TotalPriceCents int64  `dynamodbav:"total_price_cents"`
}

type quoteItem struct {
	ID              string              `dynamodbav:"id"`
	JobID           string              `dynamodbav:"job_id"`
	Version         int64               `dynamodbav:"version"`
	Status          string              `dynamodbav:"status"`
	LineItems       []quoteLineItemItem `dynamodbav:"line_items"`
	TotalPriceCents int64               `dynamodbav:"total_price_cents"`
	CreatedAt       string              `dynamodbav:"created_at"`
	ApprovedAt      string              `dynamodbav:"approved_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Line items live inside the quote item: a version's items are written once
// with it and never touched again, which keeps the total derivable from a
// single consistent read.

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

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, interfaces.ErrConditionFailed
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// GetLatestByJobID returns the highest-version quote for a job, or a zero
// value when the job has none.
func (r *QuoteDynamoRepository) GetLatestByJobID(ctx context.Context, jobID string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var latest quoteItem
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Quote{}, err
		}
		if it.Version > latest.Version {
			latest = it
		}
	}
	return fromQuoteItem(latest), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, target entities.QuoteStatus, approvedAt *time.Time) (entities.Quote, error) {
	expr := "SET #status = :target"
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	values := map[string]types.AttributeValue{
		":target":   &types.AttributeValueMemberS{Value: string(target)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
	}
	if approvedAt != nil {
		expr += ", #approved_at = :approved_at"
		names["#approved_at"] = "approved_at"
		values[":approved_at"] = &types.AttributeValueMemberS{Value: approvedAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, interfaces.ErrConditionFailed
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]quoteLineItemItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, quoteLineItemItem{
			ID:              li.ID,
			Kind:            string(li.Kind),
			Label:           li.Label,
			Quantity:        li.Quantity,
			UnitPriceCents:  li.UnitPriceCents,
			TotalPriceCents: li.TotalPriceCents,
		})
	}
	return quoteItem{
		ID:              q.ID,
		JobID:           q.JobID,
		Version:         q.Version,
		Status:          string(q.Status),
		LineItems:       items,
		TotalPriceCents: q.TotalPriceCents,
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
		ApprovedAt:      formatOptionalTime(q.ApprovedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	items := make([]entities.QuoteLineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.QuoteLineItem{
			ID:              li.ID,
			Kind:            entities.LineItemKind(li.Kind),
			Label:           li.Label,
			Quantity:        li.Quantity,
			UnitPriceCents:  li.UnitPriceCents,
			TotalPriceCents: li.TotalPriceCents,
		})
	}
	return entities.Quote{
		ID:              it.ID,
		JobID:           it.JobID,
		Version:         it.Version,
		Status:          entities.QuoteStatus(it.Status),
		LineItems:       items,
		TotalPriceCents: it.TotalPriceCents,
		CreatedAt:       createdAt,
		ApprovedAt:      parseOptionalTime(it.ApprovedAt),
	}
}
